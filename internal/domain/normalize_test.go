package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normal", in: "cat", want: "cat"},
		{name: "trims whitespace", in: "  cat \t", want: "cat"},
		{name: "lowercases", in: "Cat", want: "cat"},
		{name: "compresses inner spaces", in: "give   up", want: "give up"},
		{name: "strips surrounding punctuation", in: `"cat".`, want: "cat"},
		{name: "strips curly quotes", in: "“cat”", want: "cat"},
		{name: "drops possessive suffix", in: "cat's", want: "cat"},
		{name: "drops curly possessive suffix", in: "cat’s", want: "cat"},
		{name: "possessive after trailing period", in: "cat's.", want: "cat"},
		{name: "keeps interior apostrophe", in: "don't", want: "don't"},
		{name: "keeps interior hyphen", in: "mother-in-law", want: "mother-in-law"},
		{name: "keeps diacritics", in: "Café", want: "café"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "punctuation only", in: `"..."`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizeWord(tt.in))
		})
	}
}
