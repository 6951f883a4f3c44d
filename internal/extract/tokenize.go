package extract

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r belongs to a word token
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// Tokens lazily yields the lowercase word tokens of text with their index.
// A token is a maximal run of letters, digits, marks or underscores;
// everything else separates tokens and is dropped.
func Tokens(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lower := strings.ToLower(text)
		index := 0
		start := -1

		for i, r := range lower {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(index, lower[start:i]) {
					return
				}
				index++
				start = -1
			}
		}

		if start >= 0 {
			yield(index, lower[start:])
		}
	}
}

// Tokenize returns all tokens of text in order
func Tokenize(text string) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(text)/5+1)
	for _, tok := range Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}
