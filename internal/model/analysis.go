package model

import "errors"

// ErrInvalidInput is returned when the text to analyze is empty or not valid UTF-8
var ErrInvalidInput = errors.New("invalid input")

// Category is the coarse polarity of a lexicon entry
type Category string

const (
	CategoryHate     Category = "hate"     // Hateful terms and phrases
	CategoryModerate Category = "moderate" // Offensive but not hateful
	CategorySafe     Category = "safe"     // Positive, inclusive language
)

// Categories lists every category in match priority order
var Categories = []Category{CategoryHate, CategoryModerate, CategorySafe}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryHate, CategoryModerate, CategorySafe:
		return true
	default:
		return false
	}
}

// Emotion returns the emotion label carried by entries of this category
func (c Category) Emotion() Emotion {
	switch c {
	case CategoryHate:
		return EmotionHateful
	case CategoryModerate:
		return EmotionOffensive
	case CategorySafe:
		return EmotionPositive
	default:
		return EmotionNeutral
	}
}

// Emotion is the label attached to each timeline entry
type Emotion string

const (
	EmotionHateful   Emotion = "HATEFUL"
	EmotionOffensive Emotion = "OFFENSIVE"
	EmotionPositive  Emotion = "POSITIVE"
	EmotionNeutral   Emotion = "NEUTRAL" // Never produced by a valid category
)

// ShiftType classifies a detected tone shift
type ShiftType string

const (
	ShiftPositiveToHate ShiftType = "POSITIVE_TO_HATE"
	ShiftHateToPositive ShiftType = "HATE_TO_POSITIVE"
)

// Label is the banded classification of a text
type Label string

const (
	LabelHateSpeech   Label = "HATE_SPEECH"   // f >= 0.8
	LabelModerateHate Label = "MODERATE_HATE" // 0.4 <= f < 0.8
	LabelBorderline   Label = "BORDERLINE"    // 0 <= f < 0.4
	LabelNotHate      Label = "NOT_HATE"      // f < 0
)

// IsHateful reports whether the label counts as hateful when blended with other predictors
func (l Label) IsHateful() bool {
	switch l {
	case LabelHateSpeech, LabelModerateHate:
		return true
	case LabelBorderline, LabelNotHate:
		return false
	default:
		return false
	}
}

// WordAnalysis is one accepted match in the emotion timeline
type WordAnalysis struct {
	Word        string   `json:"word"`        // Matched token or full phrase
	Position    int      `json:"position"`    // Token index that triggered the match (0-based)
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	Weight      float64  `json:"weight"` // Signed; safe weights are negative
	Emotion     Emotion  `json:"emotion"`
}

// ToneShift records a change in polarity within a passage
type ToneShift struct {
	Type            ShiftType `json:"shift_type"`
	StartEmotion    Emotion   `json:"start_emotion"`
	EndEmotion      Emotion   `json:"end_emotion"`
	TransitionPoint int       `json:"transition_point"` // Index into the emotion timeline
}

// Scores holds the per-category magnitudes and the combined score
type Scores struct {
	Hate     float64 `json:"hate"`      // After escalation, if any
	HateBase float64 `json:"hate_base"` // Before escalation
	Moderate float64 `json:"moderate"`
	Safe     float64 `json:"safe"`
	Final    float64 `json:"final"`
}

// Scoring is the classifier output before rounding
type Scoring struct {
	Scores     Scores   `json:"scores"`
	Label      Label    `json:"label"`
	Confidence float64  `json:"confidence"`
	Escalated  bool     `json:"escalated"` // Hate score multiplied for a positive-to-hate shift
	Signals    []Signal `json:"signals"`
}
