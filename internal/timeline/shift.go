package timeline

import (
	"slices"

	"github.com/ppiankov/toneguard/internal/model"
)

// DetectToneShift looks for a polarity change in an emotion timeline.
// Rules, first match wins:
//
//   - starts POSITIVE and contains HATEFUL: POSITIVE_TO_HATE at the first HATEFUL
//   - starts HATEFUL and contains POSITIVE: HATE_TO_POSITIVE at the first POSITIVE
//
// Timelines shorter than two entries never shift. Returns nil when no rule applies.
func DetectToneShift(emotions []model.Emotion) *model.ToneShift {
	if len(emotions) < 2 {
		return nil
	}

	switch emotions[0] {
	case model.EmotionPositive:
		if idx := slices.Index(emotions, model.EmotionHateful); idx >= 0 {
			return &model.ToneShift{
				Type:            model.ShiftPositiveToHate,
				StartEmotion:    model.EmotionPositive,
				EndEmotion:      model.EmotionHateful,
				TransitionPoint: idx,
			}
		}
	case model.EmotionHateful:
		if idx := slices.Index(emotions, model.EmotionPositive); idx >= 0 {
			return &model.ToneShift{
				Type:            model.ShiftHateToPositive,
				StartEmotion:    model.EmotionHateful,
				EndEmotion:      model.EmotionPositive,
				TransitionPoint: idx,
			}
		}
	case model.EmotionOffensive, model.EmotionNeutral:
	}

	return nil
}
