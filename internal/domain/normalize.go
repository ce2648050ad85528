package domain

import (
	"strings"
)

// NormalizeWord prepares a poem token for corpus lookup:
//   - keeps ASCII letters and the lowercase accented "é"
//   - drops everything else (punctuation, digits, apostrophes, hyphens)
//   - converts to lowercase
//
// "Home-bound." and "homebound" normalize to the same key.
// An uppercase "É" is dropped, not folded.
func NormalizeWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z', r == 'é':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// SplitWords splits text on runs of whitespace. Empty text yields no words.
func SplitWords(text string) []string {
	return strings.Fields(text)
}
