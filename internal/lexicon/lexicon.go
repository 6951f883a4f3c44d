package lexicon

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/ppiankov/toneguard/internal/model"
)

// DefaultWeight is used for subcategories missing from the weight table
const DefaultWeight = 0.5

// ErrInvalidLexicon is returned when a lexicon definition cannot be built
var ErrInvalidLexicon = errors.New("invalid lexicon")

// CategoryPriority is the order in which categories are scanned when
// matching. Subcategories and terms follow their declared order inside
// each category.
var CategoryPriority = []model.Category{
	model.CategoryHate,
	model.CategoryModerate,
	model.CategorySafe,
}

// Definition is the declarative form of a lexicon
type Definition struct {
	Categories []CategoryDefinition `yaml:"categories"`
}

// CategoryDefinition groups the subcategories of one category
type CategoryDefinition struct {
	Name          model.Category          `yaml:"name"`
	Subcategories []SubcategoryDefinition `yaml:"subcategories"`
}

// SubcategoryDefinition holds a weighted group of terms. A nil Weight falls
// back to DefaultWeight.
type SubcategoryDefinition struct {
	Name   string   `yaml:"name"`
	Weight *float64 `yaml:"weight,omitempty"`
	Terms  []string `yaml:"terms"`
}

// Entry is one term of the lexicon with its resolved weight
type Entry struct {
	Category    model.Category
	Subcategory string
	Text        string // Lowercase, single-spaced
	Weight      float64
}

// Multiword reports whether the entry is a phrase of more than one word
func (e Entry) Multiword() bool {
	return strings.Contains(e.Text, " ")
}

// HasWord reports whether word is one of the entry's whitespace-delimited words
func (e Entry) HasWord(word string) bool {
	for w := range strings.FieldsSeq(e.Text) {
		if w == word {
			return true
		}
	}
	return false
}

// Lexicon is an immutable, indexed lexicon. It is safe for concurrent use.
type Lexicon struct {
	def     Definition
	entries []Entry // Priority order
	index   map[model.Category]map[string]Entry
	weights map[model.Category]map[string]float64
}

// New builds a lexicon from a definition
func New(def Definition) (*Lexicon, error) {
	byCategory := make(map[model.Category]CategoryDefinition, len(def.Categories))
	for _, cat := range def.Categories {
		if !cat.Name.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidLexicon, cat.Name)
		}
		if _, dup := byCategory[cat.Name]; dup {
			return nil, fmt.Errorf("%w: category %q declared twice", ErrInvalidLexicon, cat.Name)
		}
		byCategory[cat.Name] = cat
	}

	lex := &Lexicon{
		index:   make(map[model.Category]map[string]Entry),
		weights: make(map[model.Category]map[string]float64),
	}

	for _, name := range CategoryPriority {
		cat, ok := byCategory[name]
		if !ok {
			continue
		}

		normalized := CategoryDefinition{Name: name}
		lex.index[name] = make(map[string]Entry)
		lex.weights[name] = make(map[string]float64)

		for _, sub := range cat.Subcategories {
			if strings.TrimSpace(sub.Name) == "" {
				return nil, fmt.Errorf("%w: empty subcategory name in %q", ErrInvalidLexicon, name)
			}

			w := DefaultWeight
			if sub.Weight != nil {
				w = *sub.Weight
				if math.IsNaN(w) || math.IsInf(w, 0) {
					return nil, fmt.Errorf("%w: non-finite weight in %s/%s", ErrInvalidLexicon, name, sub.Name)
				}
				lex.weights[name][sub.Name] = w
			}

			terms := make([]string, 0, len(sub.Terms))
			for _, raw := range sub.Terms {
				term := normalize(raw)
				if term == "" {
					return nil, fmt.Errorf("%w: empty term in %s/%s", ErrInvalidLexicon, name, sub.Name)
				}
				terms = append(terms, term)

				entry := Entry{Category: name, Subcategory: sub.Name, Text: term, Weight: w}
				lex.entries = append(lex.entries, entry)

				if !entry.Multiword() {
					if _, seen := lex.index[name][term]; !seen {
						lex.index[name][term] = entry
					}
				}
			}

			normalized.Subcategories = append(normalized.Subcategories, SubcategoryDefinition{
				Name:   sub.Name,
				Weight: sub.Weight,
				Terms:  terms,
			})
		}

		lex.def.Categories = append(lex.def.Categories, normalized)
	}

	return lex, nil
}

// Default returns the built-in lexicon
func Default() *Lexicon {
	lex, err := New(DefaultDefinition())
	if err != nil {
		panic(fmt.Sprintf("built-in lexicon: %v", err))
	}
	return lex
}

// Weight returns the weight of a subcategory, or DefaultWeight if absent
func (l *Lexicon) Weight(category model.Category, subcategory string) float64 {
	if w, ok := l.weights[category][subcategory]; ok {
		return w
	}
	return DefaultWeight
}

// Lookup finds a single word in one category's flat index
func (l *Lexicon) Lookup(category model.Category, word string) (Entry, bool) {
	entry, ok := l.index[category][word]
	return entry, ok
}

// Phrases yields every term, single and multi word, in match priority order
func (l *Lexicon) Phrases() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of terms
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Definition returns the normalized definition the lexicon was built from
func (l *Lexicon) Definition() Definition {
	out := Definition{Categories: make([]CategoryDefinition, len(l.def.Categories))}
	for i, cat := range l.def.Categories {
		subs := make([]SubcategoryDefinition, len(cat.Subcategories))
		for j, sub := range cat.Subcategories {
			subs[j] = SubcategoryDefinition{
				Name:   sub.Name,
				Weight: sub.Weight,
				Terms:  append([]string(nil), sub.Terms...),
			}
		}
		out.Categories[i] = CategoryDefinition{Name: cat.Name, Subcategories: subs}
	}
	return out
}

// Stats summarizes term counts per category
type Stats struct {
	Counts map[model.Category]int `json:"counts" yaml:"counts"`
	Total  int                    `json:"total" yaml:"total"`
}

// Stats counts the terms in each category
func (l *Lexicon) Stats() Stats {
	stats := Stats{Counts: make(map[model.Category]int, len(CategoryPriority))}
	for _, e := range l.entries {
		stats.Counts[e.Category]++
		stats.Total++
	}
	return stats
}

// normalize lowercases a term and collapses internal whitespace
func normalize(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}
