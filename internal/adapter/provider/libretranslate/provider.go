// Package libretranslate implements the translation provider against a
// locally running LibreTranslate instance. Managing that process is out of
// scope; the adapter only talks HTTP to an already-running service.
package libretranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pymage/pymage-backend/internal/config"
)

// Provider fetches translations for a word. With no base URL configured the
// provider is disabled and always returns nil translations.
type Provider struct {
	baseURL    string
	target     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.TranslateConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		target:     cfg.TargetLanguage,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "libretranslate"),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// FetchTranslations translates word into the configured target language.
// Returns nil, nil when the provider is disabled or the service returned
// nothing useful; the aggregator treats translations as optional either way.
func (p *Provider) FetchTranslations(ctx context.Context, word string) ([]string, error) {
	if p.baseURL == "" {
		return nil, nil
	}

	payload, err := json.Marshal(translateRequest{
		Q:      word,
		Source: "auto",
		Target: p.target,
		Format: "text",
	})
	if err != nil {
		return nil, fmt.Errorf("libretranslate: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("libretranslate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("libretranslate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("libretranslate: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("libretranslate: read body: %w", err)
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("libretranslate: decode json: %w", err)
	}

	text := strings.TrimSpace(tr.TranslatedText)
	if text == "" {
		return nil, nil
	}

	p.log.DebugContext(ctx, "translated word",
		slog.String("word", word),
		slog.String("target", p.target),
	)

	return []string{text}, nil
}
