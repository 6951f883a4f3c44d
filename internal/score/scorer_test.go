package score

import (
	"math"
	"testing"

	"github.com/ppiankov/toneguard/internal/model"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func entry(category model.Category, weight float64) model.WordAnalysis {
	return model.WordAnalysis{
		Word:     "w",
		Category: category,
		Weight:   weight,
		Emotion:  category.Emotion(),
	}
}

func TestScorer_Calculate_CategorySums(t *testing.T) {
	scorer := NewScorer()

	entries := []model.WordAnalysis{
		entry(model.CategoryHate, 0.75),
		entry(model.CategoryHate, 0.75),
		entry(model.CategoryModerate, 0.4),
		entry(model.CategorySafe, -0.8),
		entry(model.CategorySafe, -0.6),
	}

	result := scorer.Calculate(entries, nil)

	if !near(result.Scores.Hate, 1.5) {
		t.Errorf("expected hate 1.5, got %v", result.Scores.Hate)
	}
	if !near(result.Scores.Moderate, 0.4) {
		t.Errorf("expected moderate 0.4, got %v", result.Scores.Moderate)
	}
	if !near(result.Scores.Safe, 1.4) {
		t.Errorf("expected safe magnitude 1.4, got %v", result.Scores.Safe)
	}

	// 1.5 + 0.2 - 0.98
	if !near(result.Scores.Final, 0.72) {
		t.Errorf("expected final 0.72, got %v", result.Scores.Final)
	}
	if result.Label != model.LabelModerateHate {
		t.Errorf("expected MODERATE_HATE, got %s", result.Label)
	}
	if result.Escalated {
		t.Error("expected no escalation without a tone shift")
	}
}

func TestScorer_Calculate_Escalation(t *testing.T) {
	scorer := NewScorer()

	entries := []model.WordAnalysis{
		entry(model.CategorySafe, -0.8),
		entry(model.CategoryHate, 0.6),
	}
	shift := &model.ToneShift{
		Type:            model.ShiftPositiveToHate,
		StartEmotion:    model.EmotionPositive,
		EndEmotion:      model.EmotionHateful,
		TransitionPoint: 1,
	}

	plain := scorer.Calculate(entries, nil)
	escalated := scorer.Calculate(entries, shift)

	if escalated.Scores.Hate != plain.Scores.Hate*EscalationFactor {
		t.Errorf("expected escalated hate to be exactly %v x %v, got %v", plain.Scores.Hate, EscalationFactor, escalated.Scores.Hate)
	}
	if escalated.Scores.HateBase != plain.Scores.Hate {
		t.Errorf("expected base hate %v to be kept, got %v", plain.Scores.Hate, escalated.Scores.HateBase)
	}
	if !escalated.Escalated {
		t.Error("expected Escalated to be set")
	}

	// 0.78 - 0.56
	if !near(escalated.Scores.Final, 0.22) {
		t.Errorf("expected final 0.22, got %v", escalated.Scores.Final)
	}
	if escalated.Label != model.LabelBorderline {
		t.Errorf("expected BORDERLINE, got %s", escalated.Label)
	}

	found := false
	for _, s := range escalated.Signals {
		if s.Type == model.SignalEscalation {
			found = true
		}
	}
	if !found {
		t.Error("expected an escalation signal")
	}
}

func TestScorer_Calculate_HateToPositiveDoesNotEscalate(t *testing.T) {
	scorer := NewScorer()

	entries := []model.WordAnalysis{
		entry(model.CategoryHate, 0.6),
		entry(model.CategorySafe, -0.8),
	}
	shift := &model.ToneShift{Type: model.ShiftHateToPositive, TransitionPoint: 1}

	result := scorer.Calculate(entries, shift)
	if result.Escalated || !near(result.Scores.Hate, 0.6) {
		t.Errorf("expected unescalated hate 0.6, got %v (escalated=%v)", result.Scores.Hate, result.Escalated)
	}
}

func TestScorer_Calculate_EmptyTimeline(t *testing.T) {
	result := NewScorer().Calculate(nil, nil)

	if result.Label != model.LabelNotHate {
		t.Errorf("expected NOT_HATE for an empty timeline, got %s", result.Label)
	}
	if !near(result.Confidence, 0.7) {
		t.Errorf("expected confidence 0.7, got %v", result.Confidence)
	}
	if result.Scores != (model.Scores{}) {
		t.Errorf("expected zero scores, got %+v", result.Scores)
	}
	if len(result.Signals) == 0 {
		t.Error("expected signals even for an empty timeline")
	}
}

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		desc       string
		final      float64
		label      model.Label
		confidence float64
	}{
		{"Exactly hate threshold", 0.8, model.LabelHateSpeech, 0.7},
		{"High hate", 1.5, model.LabelHateSpeech, 0.95},
		{"Capped hate", 10, model.LabelHateSpeech, 0.95},
		{"Just below hate", 0.79, model.LabelModerateHate, 0.795},
		{"Exactly moderate threshold", 0.4, model.LabelModerateHate, 0.6},
		{"Just below moderate", 0.39, model.LabelBorderline, 0.578},
		{"Exactly zero", 0, model.LabelBorderline, 0.5},
		{"Slightly negative", -0.36, model.LabelNotHate, 0.808},
		{"Very negative", -1.47, model.LabelNotHate, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			label, confidence := Classify(tt.final)
			if label != tt.label {
				t.Errorf("expected %s for %v, got %s", tt.label, tt.final, label)
			}
			if Round(confidence) != tt.confidence {
				t.Errorf("expected confidence %v for %v, got %v", tt.confidence, tt.final, Round(confidence))
			}
			if confidence < 0 || confidence > maxConfidence {
				t.Errorf("confidence %v out of range", confidence)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.7800000000000001, 0.78},
		{-1.4699999999999998, -1.47},
		{0.12345, 0.123},
		{-0.0001, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.expected {
			t.Errorf("Round(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
	if math.Signbit(Round(-0.0001)) {
		t.Error("expected positive zero")
	}
}
