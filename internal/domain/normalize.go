package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a queried word for lookup, storage, and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - strips punctuation and symbols clinging to either end (text selections
//     often drag along quotes, brackets, or a trailing period)
//   - drops a possessive "'s" suffix
//   - compresses runs of spaces into one
//
// Interior apostrophes and hyphens are preserved, so "don't" and
// "mother-in-law" survive intact.
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}

	word = strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	word = strings.TrimSuffix(word, "'s")
	word = strings.TrimSuffix(word, "’s")

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
