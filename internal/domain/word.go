package domain

// WordQuery is the immutable input to a lookup. Word must be non-empty after
// trimming; SourceLanguage defaults to the configured value when empty.
// Variant selects a specific etymology section after a disambiguation
// round-trip and is empty on the first request.
type WordQuery struct {
	Word           string
	SourceLanguage string
	Variant        string
}

// LookupErrorKind classifies a failed lookup so callers can distinguish a
// missing word from a transport problem or a page we could not make sense of.
type LookupErrorKind string

const (
	LookupErrNone      LookupErrorKind = ""
	LookupErrNotFound  LookupErrorKind = "not_found"
	LookupErrTransient LookupErrorKind = "transient"
	LookupErrParse     LookupErrorKind = "parse"
)

// RelatedWords holds the synonym/antonym split of the raw related-terms list.
type RelatedWords struct {
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
}

// WordRecord is the normalized, ready-to-render bundle for one lookup.
// It is built fresh per request and never mutated afterwards.
//
// When Error is non-empty all content fields are empty and the caller must
// render an error state. When NeedsVariantSelection is set the record carries
// only Variants; the caller resolves the ambiguity and re-issues the query
// with WordQuery.Variant set.
type WordRecord struct {
	Word                  string              `json:"word"`
	DefinitionsByPOS      map[string][]string `json:"definitions_by_pos"`
	Examples              []string            `json:"examples"`
	ExampleAudio          []string            `json:"example_audio,omitempty"`
	Etymology             string              `json:"etymology"`
	Pronunciation         string              `json:"pronunciation"`
	RelatedWords          RelatedWords        `json:"related_words"`
	Translations          []string            `json:"translations,omitempty"`
	Error                 string              `json:"error,omitempty"`
	ErrorKind             LookupErrorKind     `json:"error_kind,omitempty"`
	NeedsVariantSelection bool                `json:"needs_variant_selection,omitempty"`
	Variants              []string            `json:"variants,omitempty"`
}

// IsError reports whether the record represents a failed lookup.
func (r *WordRecord) IsError() bool {
	return r.Error != ""
}
