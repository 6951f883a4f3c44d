package score

import (
	"fmt"
	"math"

	"github.com/ppiankov/toneguard/internal/model"
)

const (
	// EscalationFactor multiplies the hate score when a text turns from
	// positive to hateful.
	EscalationFactor = 1.3

	moderateFactor = 0.5
	safeFactor     = 0.7

	hateThreshold     = 0.8
	moderateThreshold = 0.4
	maxConfidence     = 0.95
)

// Scorer turns a timeline into category scores and a banded label
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate scores the timeline entries and classifies the result. Values
// are returned at full precision.
func (s *Scorer) Calculate(entries []model.WordAnalysis, shift *model.ToneShift) model.Scoring {
	var signals []model.Signal

	// 1. Category sums
	hate, hateSignal := s.categoryScore(entries, model.CategoryHate, model.SignalHateScore)
	signals = append(signals, hateSignal)

	moderate, moderateSignal := s.categoryScore(entries, model.CategoryModerate, model.SignalModerateScore)
	signals = append(signals, moderateSignal)

	safe, safeSignal := s.categoryScore(entries, model.CategorySafe, model.SignalSafeScore)
	signals = append(signals, safeSignal)

	// 2. Escalation for positive-to-hate shifts
	effectiveHate := hate
	escalated := shift != nil && shift.Type == model.ShiftPositiveToHate
	if escalated {
		effectiveHate = hate * EscalationFactor
		signals = append(signals, model.Signal{
			Type:        model.SignalEscalation,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("Positive-to-hate shift at timeline index %d escalates hate score", shift.TransitionPoint),
			Value:       effectiveHate,
			Formula:     fmt.Sprintf("hate * %.1f", EscalationFactor),
		})
	}

	// 3. Final score and band
	final := effectiveHate + moderate*moderateFactor - safe*safeFactor

	label, confidence := Classify(final)
	if len(entries) == 0 {
		// Nothing matched: safe content rather than a zero-score borderline
		label, confidence = model.LabelNotHate, notHateConfidence(final)
	}

	signals = append(signals, model.Signal{
		Type:        model.SignalFinalScore,
		Severity:    severityFor(label),
		Description: fmt.Sprintf("Final score %.3f classified as %s", final, label),
		Value:       final,
		Formula:     "hate + 0.5*moderate - 0.7*safe",
	})

	return model.Scoring{
		Scores: model.Scores{
			Hate:     effectiveHate,
			HateBase: hate,
			Moderate: moderate,
			Safe:     safe,
			Final:    final,
		},
		Label:      label,
		Confidence: confidence,
		Escalated:  escalated,
		Signals:    signals,
	}
}

// categoryScore sums the weight magnitudes of one category
func (s *Scorer) categoryScore(entries []model.WordAnalysis, category model.Category, signalType model.SignalType) (float64, model.Signal) {
	sum := 0.0
	count := 0
	for _, e := range entries {
		if e.Category == category {
			sum += math.Abs(e.Weight)
			count++
		}
	}

	severity := model.SeverityInfo
	if category == model.CategoryHate && count > 0 {
		severity = model.SeverityCritical
	} else if category == model.CategoryModerate && count > 0 {
		severity = model.SeverityWarning
	}

	return sum, model.Signal{
		Type:        signalType,
		Severity:    severity,
		Description: fmt.Sprintf("%d %s match(es), weight %.3f", count, category, sum),
		Value:       sum,
		Formula:     fmt.Sprintf("sum(|weight|) over %s entries", category),
	}
}

// Classify maps a final score to its band and confidence. Bands are closed
// on the low side, so a score exactly on a threshold takes the higher band.
func Classify(final float64) (model.Label, float64) {
	switch {
	case final >= hateThreshold:
		return model.LabelHateSpeech, math.Min(maxConfidence, 0.7+(final-hateThreshold)*0.5)
	case final >= moderateThreshold:
		return model.LabelModerateHate, 0.6 + (final-moderateThreshold)*0.5
	case final >= 0:
		return model.LabelBorderline, 0.5 + final*0.2
	default:
		return model.LabelNotHate, notHateConfidence(final)
	}
}

func notHateConfidence(final float64) float64 {
	return math.Min(maxConfidence, 0.7+math.Abs(final)*0.3)
}

func severityFor(label model.Label) model.SignalSeverity {
	switch label {
	case model.LabelHateSpeech:
		return model.SeverityCritical
	case model.LabelModerateHate, model.LabelBorderline:
		return model.SeverityWarning
	case model.LabelNotHate:
		return model.SeverityInfo
	default:
		return model.SeverityInfo
	}
}

// Round rounds v to 3 decimal places
func Round(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // no negative zero in output
	}
	return r
}
