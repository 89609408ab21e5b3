// Package lookup implements the word data aggregator: it merges the
// dictionary source, the example-sentence corpus, and the optional
// translation provider into one normalized WordRecord per query.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pymage/pymage-backend/internal/config"
	"github.com/pymage/pymage-backend/internal/domain"
	"github.com/pymage/pymage-backend/internal/provider"
)

type dictionaryClient interface {
	Lookup(ctx context.Context, word, language string) *provider.RawDictionaryEntry
	LookupVariant(ctx context.Context, word, language, variant string) *provider.RawDictionaryEntry
	SearchPrefix(ctx context.Context, prefix string, limit int) []string
}

type sentenceClient interface {
	SearchSentences(ctx context.Context, word, sourceLang string, limit int) []provider.Sentence
	AudioURL(sentenceID int64) string
}

type translationProvider interface {
	FetchTranslations(ctx context.Context, word string) ([]string, error)
}

// Service aggregates word data from the configured providers.
type Service struct {
	log        *slog.Logger
	dict       dictionaryClient
	sentences  sentenceClient
	translate  translationProvider
	dispatcher *Dispatcher
	cfg        config.LookupConfig
}

// NewService creates the aggregator. translate may be nil when translation
// backfill is disabled.
func NewService(
	logger *slog.Logger,
	dict dictionaryClient,
	sentences sentenceClient,
	translate translationProvider,
	dispatcher *Dispatcher,
	cfg config.LookupConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		dict:       dict,
		sentences:  sentences,
		translate:  translate,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// Fetch runs the lookup on a background goroutine and posts the completion
// callback to the dispatch queue. onComplete is invoked exactly once on every
// path: success, not-found, transport failure, or panic during processing.
func (s *Service) Fetch(ctx context.Context, query domain.WordQuery, onComplete func(domain.WordRecord)) {
	go func() {
		rec := s.fetchRecovering(ctx, query)
		s.dispatcher.Post(func() { onComplete(rec) })
	}()
}

// FetchBlocking performs the same aggregation synchronously on the calling
// goroutine.
func (s *Service) FetchBlocking(ctx context.Context, query domain.WordQuery) domain.WordRecord {
	word := domain.NormalizeWord(query.Word)
	if word == "" {
		return errorRecord(query.Word, "word must not be empty", domain.LookupErrNotFound)
	}

	var raw *provider.RawDictionaryEntry
	if query.Variant != "" {
		raw = s.dict.LookupVariant(ctx, word, query.SourceLanguage, query.Variant)
	} else {
		raw = s.dict.Lookup(ctx, word, query.SourceLanguage)
	}

	// Dictionary failure short-circuits: the sentence corpus is not
	// consulted for a word we could not resolve at all.
	if raw.IsError() {
		return errorRecord(word, raw.Err, raw.ErrKind)
	}

	if len(raw.Variants) > 0 {
		rec := errorFreeRecord(word)
		rec.NeedsVariantSelection = true
		rec.Variants = raw.Variants
		return rec
	}

	rec := errorFreeRecord(word)

	// All definitions land in a single synthetic bucket. Part-of-speech
	// attribution is a known simplification carried over deliberately.
	if len(raw.Definitions) > 0 {
		rec.DefinitionsByPOS["noun"] = raw.Definitions
	}

	rec.Examples, rec.ExampleAudio = s.collectExamples(ctx, word, query.SourceLanguage, raw.Examples)

	// The related-terms list is bisected at its midpoint, first half
	// synonyms, second half antonyms. No semantic basis; preserved as-is.
	mid := len(raw.RelatedTerms) / 2
	rec.RelatedWords.Synonyms = append(rec.RelatedWords.Synonyms, raw.RelatedTerms[:mid]...)
	rec.RelatedWords.Antonyms = append(rec.RelatedWords.Antonyms, raw.RelatedTerms[mid:]...)

	rec.Etymology = raw.Etymology
	rec.Pronunciation = raw.Pronunciation

	if s.translate != nil {
		translations, err := s.translate.FetchTranslations(ctx, word)
		if err != nil {
			s.log.WarnContext(ctx, "translation provider error, proceeding without translations",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
		} else {
			rec.Translations = translations
		}
	}

	return rec
}

// Suggest returns prefix-completion candidates for live suggestions.
// Failures are silent: an empty slice renders as "no suggestions".
func (s *Service) Suggest(ctx context.Context, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}
	}
	return s.dict.SearchPrefix(ctx, prefix, s.cfg.SuggestLimit)
}

// collectExamples applies the backfill policy: when the dictionary yielded
// fewer than the minimum, the sentence corpus tops the list up to the cap;
// otherwise the dictionary examples are truncated to the cap. Backfilled
// sentences with a recording also contribute their audio URL.
func (s *Service) collectExamples(ctx context.Context, word, sourceLang string, fromDict []string) ([]string, []string) {
	examples := append([]string{}, fromDict...)

	if len(examples) >= s.cfg.MinExamples {
		if len(examples) > s.cfg.MaxExamples {
			examples = examples[:s.cfg.MaxExamples]
		}
		return examples, nil
	}

	var audio []string
	need := s.cfg.MaxExamples - len(examples)
	for _, sent := range s.sentences.SearchSentences(ctx, word, sourceLang, need) {
		examples = append(examples, sent.Text)
		if sent.HasAudio {
			audio = append(audio, s.sentences.AudioURL(sent.ID))
		}
	}
	return examples, audio
}

func (s *Service) fetchRecovering(ctx context.Context, query domain.WordQuery) (rec domain.WordRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "lookup panicked",
				slog.String("word", query.Word),
				slog.Any("panic", r),
			)
			rec = errorRecord(query.Word, fmt.Sprintf("error retrieving data: %v", r), domain.LookupErrTransient)
		}
	}()
	return s.FetchBlocking(ctx, query)
}

// errorFreeRecord returns a record with all collection fields initialized
// empty, so callers and JSON encoding never see nil.
func errorFreeRecord(word string) domain.WordRecord {
	return domain.WordRecord{
		Word:             word,
		DefinitionsByPOS: map[string][]string{},
		Examples:         []string{},
		RelatedWords: domain.RelatedWords{
			Synonyms: []string{},
			Antonyms: []string{},
		},
	}
}

func errorRecord(word, msg string, kind domain.LookupErrorKind) domain.WordRecord {
	rec := errorFreeRecord(word)
	rec.Error = msg
	rec.ErrorKind = kind
	return rec
}
