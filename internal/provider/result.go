// Package provider defines the neutral result types returned by the external
// data-source adapters. The aggregator consumes these; nothing here is
// persisted directly.
package provider

import "github.com/pymage/pymage-backend/internal/domain"

// RawDictionaryEntry is the parsed-but-unnormalized result of one dictionary
// lookup. Adapters never propagate transport or parse failures as Go errors:
// both fold into Err/ErrKind with all other fields empty, so the entry is
// always usable.
type RawDictionaryEntry struct {
	Definitions   []string
	Etymology     string
	Pronunciation string
	Examples      []string
	RelatedTerms  []string

	// Variants is set instead of content when the page carries several
	// distinct etymology sections and no variant was requested.
	Variants []string

	Err     string
	ErrKind domain.LookupErrorKind
}

// IsError reports whether the entry represents a failed lookup.
func (e *RawDictionaryEntry) IsError() bool {
	return e.Err != ""
}

// Sentence is one example sentence from the sentence-corpus adapter.
type Sentence struct {
	ID       int64
	Text     string
	Lang     string
	HasAudio bool
}
