package match

import (
	"strings"

	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/ppiankov/toneguard/internal/model"
)

// Matcher resolves tokens against a lexicon. It holds no per-call state and
// is safe for concurrent use.
type Matcher struct {
	lex *lexicon.Lexicon
}

// New creates a matcher over lex
func New(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// Match resolves one token against the lexicon, using text (the lowercased
// full input) for phrase containment. Rules apply in order and the first
// that applies wins:
//
//  1. the first phrase, in lexicon priority order, that text contains and
//     that has token as one of its words; the whole phrase is reported
//  2. stoplisted tokens produce no match
//  3. the flat single-word index, in category priority order
//
// A phrase found anywhere in text is attributed to the token even when the
// occurrence is far away from it.
func (m *Matcher) Match(token string, position int, text string) (model.WordAnalysis, bool) {
	for e := range m.lex.Phrases() {
		if strings.Contains(text, e.Text) && e.HasWord(token) {
			return analysis(e.Text, position, e), true
		}
	}
	return m.matchWord(token, position)
}

// Prepare precomputes phrase containment for one text. The returned Context
// gives the same results as Match for that text, in time independent of the
// lexicon size per token.
func (m *Matcher) Prepare(text string) *Context {
	first := make(map[string]lexicon.Entry)
	for e := range m.lex.Phrases() {
		if !strings.Contains(text, e.Text) {
			continue
		}
		for w := range strings.FieldsSeq(e.Text) {
			if _, ok := first[w]; !ok {
				first[w] = e
			}
		}
	}
	return &Context{matcher: m, first: first}
}

func (m *Matcher) matchWord(token string, position int) (model.WordAnalysis, bool) {
	if lexicon.IsStopword(token) {
		return model.WordAnalysis{}, false
	}
	for _, cat := range lexicon.CategoryPriority {
		if e, ok := m.lex.Lookup(cat, token); ok {
			return analysis(token, position, e), true
		}
	}
	return model.WordAnalysis{}, false
}

// Context matches tokens of a single prepared text
type Context struct {
	matcher *Matcher
	first   map[string]lexicon.Entry // word -> first contained phrase having it
}

// Match resolves token at position within the prepared text
func (c *Context) Match(token string, position int) (model.WordAnalysis, bool) {
	if e, ok := c.first[token]; ok {
		return analysis(e.Text, position, e), true
	}
	return c.matcher.matchWord(token, position)
}

func analysis(word string, position int, e lexicon.Entry) model.WordAnalysis {
	return model.WordAnalysis{
		Word:        word,
		Position:    position,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Weight:      e.Weight,
		Emotion:     e.Category.Emotion(),
	}
}
