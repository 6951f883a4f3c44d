package timeline

import (
	"slices"
	"strings"

	"github.com/ppiankov/toneguard/internal/model"
)

// Matcher resolves a token of the text being tracked
type Matcher interface {
	Match(token string, position int) (model.WordAnalysis, bool)
}

type entryKey struct {
	word     string
	position int
}

// Tracker builds the emotion timeline of one text. It is not safe for
// concurrent use; create one per analyzed text.
type Tracker struct {
	matcher       Matcher
	anchorPhrases bool
	anchors       map[string]int
	seen          map[entryKey]struct{}
	entries       []model.WordAnalysis
}

// Option configures a Tracker
type Option func(*Tracker)

// WithAnchoredPhrases anchors every multi-word phrase match at the position
// of the first token that triggered it, so each phrase enters the timeline
// once per text.
func WithAnchoredPhrases(enabled bool) Option {
	return func(t *Tracker) {
		t.anchorPhrases = enabled
	}
}

// NewTracker creates a tracker over a prepared matcher
func NewTracker(m Matcher, opts ...Option) *Tracker {
	t := &Tracker{
		matcher: m,
		anchors: make(map[string]int),
		seen:    make(map[entryKey]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Observe matches the token at position and appends the result unless an
// entry with the same matched text and position is already present.
// It reports whether an entry was appended.
func (t *Tracker) Observe(token string, position int) bool {
	wa, ok := t.matcher.Match(token, position)
	if !ok {
		return false
	}

	if t.anchorPhrases && strings.Contains(wa.Word, " ") {
		if anchor, found := t.anchors[wa.Word]; found {
			wa.Position = anchor
		} else {
			t.anchors[wa.Word] = wa.Position
		}
	}

	key := entryKey{word: wa.Word, position: wa.Position}
	if _, dup := t.seen[key]; dup {
		return false
	}
	t.seen[key] = struct{}{}
	t.entries = append(t.entries, wa)
	return true
}

// Entries returns the timeline in detection order
func (t *Tracker) Entries() []model.WordAnalysis {
	return slices.Clone(t.entries)
}

// Emotions returns the emotion label of each timeline entry in order
func (t *Tracker) Emotions() []model.Emotion {
	return Emotions(t.entries)
}

// Emotions maps timeline entries to their emotion labels
func Emotions(entries []model.WordAnalysis) []model.Emotion {
	emotions := make([]model.Emotion, len(entries))
	for i, e := range entries {
		emotions[i] = e.Emotion
	}
	return emotions
}
