package model

// Report is the complete verdict for one analyzed text
type Report struct {
	Text            string         `json:"text"`                 // Text that was analyzed
	Classification  Label          `json:"classification"`       // Banded label
	Confidence      float64        `json:"confidence"`           // 0 to 0.95, rounded to 3 decimals
	Scores          Scores         `json:"scores"`               // Rounded to 3 decimals
	ToneShift       *ToneShift     `json:"tone_shift,omitempty"` // Nil when no shift was found
	WordAnalysis    []WordAnalysis `json:"word_analysis"`        // Accepted matches in detection order
	EmotionTimeline []Emotion      `json:"emotion_timeline"`     // Emotion of each accepted match
	Message         string         `json:"message"`              // Human-readable explanation
	Details         Breakdown      `json:"details"`              // Structured explanation
	Signals         []Signal       `json:"signals"`              // Transparent scoring inputs
	Principles      Principles     `json:"principles"`
}

// HateLikelihood returns the hate probability this report contributes to a
// multi-predictor consensus: the confidence for hateful labels, its
// complement otherwise.
func (r *Report) HateLikelihood() float64 {
	if r.Classification.IsHateful() {
		return r.Confidence
	}
	return 1 - r.Confidence
}

// Signal represents a scoring input with the formula that produced it
type Signal struct {
	Type        SignalType     `json:"type"`              // Signal classification
	Severity    SignalSeverity `json:"severity"`          // info, warning, critical
	Description string         `json:"description"`       // Human-readable description
	Value       float64        `json:"value"`             // Full-precision value
	Formula     string         `json:"formula,omitempty"` // How Value was computed
}

// SignalType classifies the type of scoring signal
type SignalType string

const (
	SignalHateScore     SignalType = "hate_score"     // Sum of hate weights
	SignalModerateScore SignalType = "moderate_score" // Sum of moderate weights
	SignalSafeScore     SignalType = "safe_score"     // Sum of safe weight magnitudes
	SignalEscalation    SignalType = "escalation"     // Positive-to-hate multiplier
	SignalFinalScore    SignalType = "final_score"    // Weighted combination
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// Principles documents which properties the verdict was produced under
type Principles struct {
	Deterministic bool `json:"deterministic"` // Same text, same verdict
	Transparent   bool `json:"transparent"`   // Every score is explainable
	LexiconOnly   bool `json:"lexicon_only"`  // No statistical model involved
}

// DefaultPrinciples returns the principles every report is produced under
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Transparent:   true,
		LexiconOnly:   true,
	}
}
