package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	if c.Wiktionary.BaseURL == "" {
		return fmt.Errorf("wiktionary.base_url must not be empty")
	}
	if c.Tatoeba.BaseURL == "" {
		return fmt.Errorf("tatoeba.base_url must not be empty")
	}
	if c.Tatoeba.MinSentenceLen < 0 || c.Tatoeba.MaxSentenceLen < c.Tatoeba.MinSentenceLen {
		return fmt.Errorf("tatoeba: sentence length window invalid (min %d, max %d)",
			c.Tatoeba.MinSentenceLen, c.Tatoeba.MaxSentenceLen)
	}

	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	return nil
}

func (l *LookupConfig) validate() error {
	if l.MaxExamples <= 0 {
		return fmt.Errorf("max_examples must be > 0 (got %d)", l.MaxExamples)
	}
	if l.MinExamples < 0 || l.MinExamples > l.MaxExamples {
		return fmt.Errorf("min_examples must be within [0, max_examples] (got %d)", l.MinExamples)
	}
	if l.SuggestLimit <= 0 {
		return fmt.Errorf("suggest_limit must be > 0 (got %d)", l.SuggestLimit)
	}
	return nil
}
