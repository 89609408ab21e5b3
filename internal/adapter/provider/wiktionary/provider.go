// Package wiktionary implements the dictionary source client against the
// MediaWiki API of en.wiktionary.org. One lookup issues one action=parse
// request and scrapes the rendered page HTML.
package wiktionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pymage/pymage-backend/internal/config"
	"github.com/pymage/pymage-backend/internal/domain"
	"github.com/pymage/pymage-backend/internal/provider"
)

// Provider fetches and parses word pages from Wiktionary.
type Provider struct {
	baseURL    string
	defaultLng string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.WiktionaryConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		defaultLng: cfg.DefaultLanguage,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// parseResponse is the action=parse JSON envelope (formatversion=2).
type parseResponse struct {
	Parse *struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Lookup fetches the entry for word. Transport failures, missing pages, and
// unparseable payloads all fold into the returned entry's Err/ErrKind; the
// result is never nil and the method never panics past its boundary.
func (p *Provider) Lookup(ctx context.Context, word, language string) *provider.RawDictionaryEntry {
	return p.lookup(ctx, word, language, "")
}

// LookupVariant re-fetches word scoped to one etymology section after the
// caller resolved a disambiguation. variant is one of the strings previously
// returned in RawDictionaryEntry.Variants.
func (p *Provider) LookupVariant(ctx context.Context, word, language, variant string) *provider.RawDictionaryEntry {
	return p.lookup(ctx, word, language, variant)
}

func (p *Provider) lookup(ctx context.Context, word, language, variant string) *provider.RawDictionaryEntry {
	if language == "" {
		language = p.defaultLng
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", word)
	q.Set("format", "json")
	q.Set("prop", "text")
	q.Set("formatversion", "2")

	body, err := p.get(ctx, q)
	if err != nil {
		p.log.WarnContext(ctx, "lookup request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return &provider.RawDictionaryEntry{
			Err:     fmt.Sprintf("request failed: %v", err),
			ErrKind: domain.LookupErrTransient,
		}
	}

	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &provider.RawDictionaryEntry{
			Err:     fmt.Sprintf("failed to parse response for word %s: %v", word, err),
			ErrKind: domain.LookupErrParse,
		}
	}

	if resp.Error != nil || resp.Parse == nil {
		return &provider.RawDictionaryEntry{
			Err:     fmt.Sprintf("word not found: %s", word),
			ErrKind: domain.LookupErrNotFound,
		}
	}

	entry := parseContent(resp.Parse.Text, language, variant)

	p.log.DebugContext(ctx, "lookup response",
		slog.String("word", word),
		slog.Int("definitions", len(entry.Definitions)),
		slog.Int("examples", len(entry.Examples)),
		slog.Int("variants", len(entry.Variants)),
	)

	return entry
}

// SearchPrefix returns up to limit page titles starting with prefix, for
// live-suggestion UI. Suggestions are non-critical: any failure yields an
// empty slice and a debug log, never an error.
func (p *Provider) SearchPrefix(ctx context.Context, prefix string, limit int) []string {
	q := url.Values{}
	q.Set("action", "opensearch")
	q.Set("search", prefix)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("namespace", "0")
	q.Set("format", "json")

	body, err := p.get(ctx, q)
	if err != nil {
		p.log.DebugContext(ctx, "suggestion request failed",
			slog.String("prefix", prefix),
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	// opensearch responds with [query, [titles], [descriptions], [urls]].
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) < 2 {
		return []string{}
	}

	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return []string{}
	}
	return titles
}

// get issues a GET with the given query parameters, retrying once on 5xx or
// network error the way a flaky public API warrants.
func (p *Provider) get(ctx context.Context, q url.Values) ([]byte, error) {
	reqURL := p.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: read body: %w", err)
	}
	return body, nil
}

func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "wiktionary retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
