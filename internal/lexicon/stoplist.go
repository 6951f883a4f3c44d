package lexicon

import (
	"maps"
	"slices"
)

// stoplist is the closed set of function words that never match on their
// own. A stoplisted token still matches as part of a phrase.
var stoplist = map[string]struct{}{
	// pronouns
	"i": {}, "you": {}, "he": {}, "she": {}, "they": {}, "we": {},
	// generic referents
	"all": {}, "people": {},
	// copula
	"is": {}, "are": {}, "am": {}, "was": {}, "were": {}, "be": {}, "been": {},
	// articles
	"the": {}, "a": {}, "an": {},
	// conjunctions
	"and": {}, "or": {}, "but": {},
	// prepositions
	"in": {}, "on": {}, "for": {},
}

// IsStopword reports whether word is in the closed stoplist. word must be lowercase.
func IsStopword(word string) bool {
	_, ok := stoplist[word]
	return ok
}

// Stopwords returns the stoplist members in sorted order
func Stopwords() []string {
	return slices.Sorted(maps.Keys(stoplist))
}
