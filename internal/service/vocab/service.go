// Package vocab implements saved-word operations over the local word store.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pymage/pymage-backend/internal/domain"
)

type wordStore interface {
	WordExists(ctx context.Context, word string) (bool, error)
	SaveWord(ctx context.Context, word, sourceLang string) (int64, error)
	SearchWords(ctx context.Context, substr string) ([]domain.StoredWord, error)
	GetSavedWords(ctx context.Context, limit, offset int) ([]domain.StoredWord, error)
	GetFavorites(ctx context.Context) ([]domain.StoredWord, error)
	DeleteWord(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
}

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Service orchestrates vocabulary persistence.
type Service struct {
	log   *slog.Logger
	store wordStore
}

// NewService creates a vocab service over the store.
func NewService(logger *slog.Logger, store wordStore) *Service {
	return &Service{
		log:   logger.With("service", "vocab"),
		store: store,
	}
}

// SaveWord persists a word in normalized form, so "Cat " and "cat" resolve
// to the same row. Saving an already-saved word is a no-op signaled by a nil
// id, distinct from a store failure (non-nil error) and from a successful
// insert (non-nil id). Save is therefore idempotent-safe: callers may
// re-save without checking first.
func (s *Service) SaveWord(ctx context.Context, word, sourceLang string) (*int64, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	exists, err := s.store.WordExists(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("save word: %w", err)
	}
	if exists {
		return nil, nil
	}

	id, err := s.store.SaveWord(ctx, word, sourceLang)
	if err != nil {
		// A concurrent save between the existence check and the insert
		// folds into the same duplicate signal.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("save word: %w", err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("word", word),
		slog.Int64("id", id),
	)
	return &id, nil
}

// Exists reports whether word is already saved. The word is normalized the
// same way SaveWord normalizes it.
func (s *Service) Exists(ctx context.Context, word string) (bool, error) {
	return s.store.WordExists(ctx, domain.NormalizeWord(word))
}

// List returns saved words by recency. Limit is clamped to [1, 500],
// defaulting to 100; a negative offset is treated as zero.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.StoredWord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.GetSavedWords(ctx, limit, offset)
}

// Search returns saved words containing query. An empty query returns an
// empty result without touching the store.
func (s *Service) Search(ctx context.Context, query string) ([]domain.StoredWord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.StoredWord{}, nil
	}
	return s.store.SearchWords(ctx, query)
}

// Favorites returns favorited words by recency.
func (s *Service) Favorites(ctx context.Context) ([]domain.StoredWord, error) {
	return s.store.GetFavorites(ctx)
}

// Delete removes a saved word by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteWord(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "word deleted", slog.Int64("id", id))
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	return s.store.ToggleFavorite(ctx, id)
}
