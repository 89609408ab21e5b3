// Package speech implements pronunciation playback as an ordered chain of
// providers: a networked synthesizer first, the operating system's speech
// facility as fallback. Callers get an error value only when every provider
// failed; nothing here panics past the boundary.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Provider produces audible speech for a single word.
type Provider interface {
	Name() string
	Speak(ctx context.Context, word, langCode string) error
}

// Chain tries each provider in order until one succeeds.
type Chain struct {
	providers []Provider
	log       *slog.Logger
}

// NewChain creates a Chain over the given providers, tried in argument order.
func NewChain(logger *slog.Logger, providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		log:       logger.With("component", "speech"),
	}
}

// Speak plays word aloud. On failure of a provider the next one is tried;
// the returned error joins every provider's failure when all of them failed.
func (c *Chain) Speak(ctx context.Context, word, langCode string) error {
	if len(c.providers) == 0 {
		return fmt.Errorf("speech: no providers configured")
	}

	var errs []error
	for _, p := range c.providers {
		err := p.Speak(ctx, word, langCode)
		if err == nil {
			return nil
		}
		c.log.WarnContext(ctx, "speech provider failed, trying next",
			slog.String("provider", p.Name()),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return fmt.Errorf("speech: all providers failed: %w", errors.Join(errs...))
}
