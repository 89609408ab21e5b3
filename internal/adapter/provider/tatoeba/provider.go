// Package tatoeba implements the example-sentence client against the Tatoeba
// corpus API. It is consulted only to backfill examples when the dictionary
// source came up short, so every failure degrades to an empty result.
package tatoeba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/pymage/pymage-backend/internal/config"
	"github.com/pymage/pymage-backend/internal/provider"
)

// langCodes maps display language names to the ISO 639-3 codes Tatoeba uses.
var langCodes = map[string]string{
	"English": "eng",
	"Spanish": "spa",
	"French":  "fra",
	"German":  "deu",
}

// Provider fetches example sentences from the Tatoeba corpus.
type Provider struct {
	baseURL    string
	minLen     int
	maxLen     int
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.TatoebaConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		minLen:     cfg.MinSentenceLen,
		maxLen:     cfg.MaxSentenceLen,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "tatoeba"),
	}
}

// SearchSentences returns up to limit sentences containing word as an exact
// token. Results outside the configured length window are dropped and the
// queried word is highlighted in place with '*' markers, word-boundary safe
// and case-insensitive. Any failure yields an empty slice: backfill is
// best-effort by design.
func (p *Provider) SearchSentences(ctx context.Context, word, sourceLang string, limit int) []provider.Sentence {
	q := url.Values{}
	q.Set("from", langCode(sourceLang))
	q.Set("query", exactQuery(word))
	q.Set("page", "1")
	q.Set("limit", fmt.Sprintf("%d", limit))

	reqURL := p.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return []provider.Sentence{}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "sentence search failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return []provider.Sentence{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.WarnContext(ctx, "sentence search failed",
			slog.String("word", word),
			slog.Int("status", resp.StatusCode),
		)
		return []provider.Sentence{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []provider.Sentence{}
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		p.log.WarnContext(ctx, "sentence search decode failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return []provider.Sentence{}
	}

	highlight := highlighter(word)

	sentences := []provider.Sentence{}
	for _, res := range sr.Results {
		text := strings.TrimSpace(res.Text)
		if len(text) < p.minLen || len(text) > p.maxLen {
			continue
		}
		sentences = append(sentences, provider.Sentence{
			ID:       res.ID,
			Text:     highlight(text),
			Lang:     res.Lang,
			HasAudio: len(res.Audios) > 0,
		})
		if len(sentences) >= limit {
			break
		}
	}

	p.log.DebugContext(ctx, "sentence search",
		slog.String("word", word),
		slog.Int("returned", len(sr.Results)),
		slog.Int("kept", len(sentences)),
	)

	return sentences
}

// AudioURL returns the audio location for a sentence that has audio.
func (p *Provider) AudioURL(sentenceID int64) string {
	return fmt.Sprintf("https://audio.tatoeba.org/sentences/%d.mp3", sentenceID)
}

// exactQuery wraps word so the corpus treats it as an exact-token match
// rather than a substring match, unless the caller already quoted it.
func exactQuery(word string) string {
	if strings.HasPrefix(word, "=") || strings.HasPrefix(word, `"`) {
		return word
	}
	return "=" + word
}

// highlighter returns a function wrapping whole-word occurrences of word in
// '*' markers, preserving the original casing of each match.
func highlighter(word string) func(string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return func(s string) string { return s }
	}
	return func(s string) string {
		return re.ReplaceAllString(s, "*$0*")
	}
}

func langCode(name string) string {
	if code, ok := langCodes[name]; ok {
		return code
	}
	return "eng"
}
