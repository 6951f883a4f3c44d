// Package analyzer turns a text into a scored, explained verdict. It is a
// pure function of the text and the lexicon: no I/O, no logging, no shared
// mutable state.
package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/toneguard/internal/explain"
	"github.com/ppiankov/toneguard/internal/extract"
	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/ppiankov/toneguard/internal/match"
	"github.com/ppiankov/toneguard/internal/model"
	"github.com/ppiankov/toneguard/internal/score"
	"github.com/ppiankov/toneguard/internal/timeline"
)

// Analyzer is safe for concurrent use
type Analyzer struct {
	matcher       *match.Matcher
	scorer        *score.Scorer
	anchorPhrases bool
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithAnchoredPhrases counts each multi-word phrase once per text instead of
// once per triggering token
func WithAnchoredPhrases(enabled bool) Option {
	return func(a *Analyzer) {
		a.anchorPhrases = enabled
	}
}

// New creates an analyzer over lex. A nil lex selects the built-in lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	a := &Analyzer{
		matcher: match.New(lex),
		scorer:  score.NewScorer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores text and returns the full report
func (a *Analyzer) Analyze(text string) (*model.Report, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text: %w", model.ErrInvalidInput)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("text is not valid UTF-8: %w", model.ErrInvalidInput)
	}

	// 1. Timeline
	tracker := timeline.NewTracker(
		a.matcher.Prepare(strings.ToLower(text)),
		timeline.WithAnchoredPhrases(a.anchorPhrases),
	)
	for i, tok := range extract.Tokens(text) {
		tracker.Observe(tok, i)
	}
	entries := tracker.Entries()
	if entries == nil {
		entries = []model.WordAnalysis{}
	}
	emotions := timeline.Emotions(entries)

	// 2. Tone shift and scores
	shift := timeline.DetectToneShift(emotions)
	scoring := a.scorer.Calculate(entries, shift)

	confidence := score.Round(scoring.Confidence)

	// 3. Explanation
	return &model.Report{
		Text:            text,
		Classification:  scoring.Label,
		Confidence:      confidence,
		Scores:          roundScores(scoring.Scores),
		ToneShift:       shift,
		WordAnalysis:    entries,
		EmotionTimeline: emotions,
		Message:         explain.Message(scoring.Label, confidence, shift, entries),
		Details:         explain.Breakdown(entries, shift),
		Signals:         scoring.Signals,
		Principles:      model.DefaultPrinciples(),
	}, nil
}

func roundScores(s model.Scores) model.Scores {
	return model.Scores{
		Hate:     score.Round(s.Hate),
		HateBase: score.Round(s.HateBase),
		Moderate: score.Round(s.Moderate),
		Safe:     score.Round(s.Safe),
		Final:    score.Round(s.Final),
	}
}
