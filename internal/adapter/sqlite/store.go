// Package sqlite implements the local word store on a single-file SQLite
// database. The store may be reached from request goroutines and background
// workers alike, so all writes are serialized through one mutex; SQLite has a
// single writer anyway and contention here is human-scale.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/pymage/pymage-backend/internal/domain"
)

// Store provides saved-word persistence backed by SQLite.
type Store struct {
	db  *sql.DB
	sb  sq.StatementBuilderType
	mu  sync.Mutex
	log *slog.Logger
}

// Open opens (creating if needed) the store database at path and applies
// pending migrations. The parent directory is created when missing.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir %s: %w", dir, err)
		}
	}

	dsn := path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return &Store{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		log: logger.With("adapter", "sqlite"),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WordExists reports whether word is already saved.
func (s *Store) WordExists(ctx context.Context, word string) (bool, error) {
	query, args, err := s.sb.Select("id").From("saved_words").Where(sq.Eq{"word": word}).ToSql()
	if err != nil {
		return false, fmt.Errorf("sqlite: build word exists: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: word exists: %w", err)
	}
	return true, nil
}

// SaveWord inserts a new saved word and returns its id. The word column is
// unique: inserting a duplicate returns domain.ErrAlreadyExists and leaves
// the existing row untouched.
func (s *Store) SaveWord(ctx context.Context, word, sourceLang string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := s.sb.Insert("saved_words").
		Columns("word", "source_language").
		Values(word, sourceLang).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("sqlite: build save word: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, domain.ErrAlreadyExists
		}
		return 0, fmt.Errorf("sqlite: save word: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: save word id: %w", err)
	}

	s.log.DebugContext(ctx, "word saved", slog.String("word", word), slog.Int64("id", id))
	return id, nil
}

// SearchWords returns saved words containing substr, most recent first.
func (s *Store) SearchWords(ctx context.Context, substr string) ([]domain.StoredWord, error) {
	query, args, err := s.selectWords().
		Where(sq.Like{"word": "%" + substr + "%"}).
		OrderBy("date_added DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build search words: %w", err)
	}
	return s.queryWords(ctx, query, args...)
}

// GetSavedWords returns saved words ordered by recency with paging.
func (s *Store) GetSavedWords(ctx context.Context, limit, offset int) ([]domain.StoredWord, error) {
	query, args, err := s.selectWords().
		OrderBy("date_added DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build saved words: %w", err)
	}
	return s.queryWords(ctx, query, args...)
}

// GetFavorites returns favorited words, most recent first.
func (s *Store) GetFavorites(ctx context.Context) ([]domain.StoredWord, error) {
	query, args, err := s.selectWords().
		Where(sq.Eq{"favorite": true}).
		OrderBy("date_added DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build favorites: %w", err)
	}
	return s.queryWords(ctx, query, args...)
}

// DeleteWord removes a saved word by id. Returns domain.ErrNotFound when no
// row matched.
func (s *Store) DeleteWord(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := s.sb.Delete("saved_words").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build delete word: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: delete word: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: delete word affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag of a saved word and returns the new
// state. Returns domain.ErrNotFound for an unknown id.
func (s *Store) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selQuery, selArgs, err := s.sb.Select("favorite").From("saved_words").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("sqlite: build toggle favorite: %w", err)
	}

	var current bool
	err = s.db.QueryRowContext(ctx, selQuery, selArgs...).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: toggle favorite read: %w", err)
	}

	next := !current
	updQuery, updArgs, err := s.sb.Update("saved_words").
		Set("favorite", next).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("sqlite: build toggle favorite update: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, updQuery, updArgs...); err != nil {
		return false, fmt.Errorf("sqlite: toggle favorite write: %w", err)
	}
	return next, nil
}

func (s *Store) selectWords() sq.SelectBuilder {
	return s.sb.Select("id", "word", "source_language", "date_added", "favorite").From("saved_words")
}

func (s *Store) queryWords(ctx context.Context, query string, args ...any) ([]domain.StoredWord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query words: %w", err)
	}
	defer rows.Close()

	words := []domain.StoredWord{}
	for rows.Next() {
		var w domain.StoredWord
		if err := rows.Scan(&w.ID, &w.Word, &w.SourceLanguage, &w.DateAdded, &w.Favorite); err != nil {
			return nil, fmt.Errorf("sqlite: scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate words: %w", err)
	}
	return words, nil
}
