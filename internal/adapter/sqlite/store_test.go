package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymage/pymage-backend/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.db")
	store, err := Open(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestOpen_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "words.db")
	store, err := Open(path, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	assert.NoError(t, store.Ping(context.Background()))
}

func TestSaveWord_RoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	exists, err := store.WordExists(ctx, "serendipity")
	require.NoError(t, err)
	assert.False(t, exists)

	id, err := store.SaveWord(ctx, "serendipity", "English")
	require.NoError(t, err)
	assert.Positive(t, id)

	exists, err = store.WordExists(ctx, "serendipity")
	require.NoError(t, err)
	assert.True(t, exists)

	words, err := store.GetSavedWords(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, id, words[0].ID)
	assert.Equal(t, "serendipity", words[0].Word)
	assert.Equal(t, "English", words[0].SourceLanguage)
	assert.False(t, words[0].Favorite)
	assert.False(t, words[0].DateAdded.IsZero())
}

func TestSaveWord_DuplicateIsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveWord(ctx, "serendipity", "English")
	require.NoError(t, err)

	_, err = store.SaveWord(ctx, "serendipity", "English")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	words, err := store.GetSavedWords(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, words, 1, "failed insert must not add a row")
}

func TestGetSavedWords_Paging(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for _, w := range []string{"alpha", "beta", "gamma", "delta"} {
		_, err := store.SaveWord(ctx, w, "English")
		require.NoError(t, err)
	}

	page, err := store.GetSavedWords(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := store.GetSavedWords(ctx, 10, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	all, err := store.GetSavedWords(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)

	seen := map[string]bool{}
	for _, w := range all {
		seen[w.Word] = true
	}
	assert.Len(t, seen, 4)
}

func TestSearchWords_Substring(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for _, w := range []string{"running", "runner", "walking"} {
		_, err := store.SaveWord(ctx, w, "English")
		require.NoError(t, err)
	}

	got, err := store.SearchWords(ctx, "run")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, w := range got {
		assert.Contains(t, w.Word, "run")
	}

	none, err := store.SearchWords(ctx, "xyz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeleteWord(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.SaveWord(ctx, "ephemeral", "English")
	require.NoError(t, err)

	require.NoError(t, store.DeleteWord(ctx, id))

	exists, err := store.WordExists(ctx, "ephemeral")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, store.DeleteWord(ctx, id), domain.ErrNotFound)
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.SaveWord(ctx, "serendipity", "English")
	require.NoError(t, err)

	fav, err := store.ToggleFavorite(ctx, id)
	require.NoError(t, err)
	assert.True(t, fav)

	favs, err := store.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, id, favs[0].ID)

	fav, err = store.ToggleFavorite(ctx, id)
	require.NoError(t, err)
	assert.False(t, fav)

	favs, err = store.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestToggleFavorite_UnknownID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.ToggleFavorite(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
