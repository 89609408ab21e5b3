package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymage/pymage-backend/internal/domain"
)

type vocabServiceMock struct {
	saveWordFn       func(ctx context.Context, word, sourceLang string) (*int64, error)
	existsFn         func(ctx context.Context, word string) (bool, error)
	listFn           func(ctx context.Context, limit, offset int) ([]domain.StoredWord, error)
	searchFn         func(ctx context.Context, query string) ([]domain.StoredWord, error)
	favoritesFn      func(ctx context.Context) ([]domain.StoredWord, error)
	deleteFn         func(ctx context.Context, id int64) error
	toggleFavoriteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *vocabServiceMock) SaveWord(ctx context.Context, word, sourceLang string) (*int64, error) {
	return m.saveWordFn(ctx, word, sourceLang)
}

func (m *vocabServiceMock) Exists(ctx context.Context, word string) (bool, error) {
	return m.existsFn(ctx, word)
}

func (m *vocabServiceMock) List(ctx context.Context, limit, offset int) ([]domain.StoredWord, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *vocabServiceMock) Search(ctx context.Context, query string) ([]domain.StoredWord, error) {
	return m.searchFn(ctx, query)
}

func (m *vocabServiceMock) Favorites(ctx context.Context) ([]domain.StoredWord, error) {
	return m.favoritesFn(ctx)
}

func (m *vocabServiceMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *vocabServiceMock) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	return m.toggleFavoriteFn(ctx, id)
}

func TestSave_New(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		saveWordFn: func(_ context.Context, word, sourceLang string) (*int64, error) {
			assert.Equal(t, "serendipity", word)
			assert.Equal(t, "English", sourceLang)
			id := int64(42)
			return &id, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/words",
		strings.NewReader(`{"word":"serendipity","source_language":"English"}`))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"saved":true,"id":42}`, rec.Body.String())
}

func TestSave_Duplicate(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		saveWordFn: func(_ context.Context, _, _ string) (*int64, error) {
			return nil, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/words",
		strings.NewReader(`{"word":"serendipity"}`))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saved":false}`, rec.Body.String())
}

func TestSave_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := NewWordsHandler(&vocabServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSave_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		saveWordFn: func(_ context.Context, _, _ string) (*int64, error) {
			return nil, domain.NewValidationError("word", "must not be empty")
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(`{"word":""}`))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must not be empty")
}

func TestExists_Found(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		existsFn: func(_ context.Context, word string) (bool, error) {
			assert.Equal(t, "serendipity", word)
			return true, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/exists?word=serendipity", nil)
	rec := httptest.NewRecorder()

	h.Exists(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"word":"serendipity","exists":true}`, rec.Body.String())
}

func TestExists_MissingWord(t *testing.T) {
	t.Parallel()

	h := NewWordsHandler(&vocabServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/exists", nil)
	rec := httptest.NewRecorder()

	h.Exists(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_PassesPaging(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		listFn: func(_ context.Context, limit, offset int) ([]domain.StoredWord, error) {
			assert.Equal(t, 25, limit)
			assert.Equal(t, 50, offset)
			return []domain.StoredWord{{ID: 1, Word: "alpha"}}, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words?limit=25&offset=50", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alpha"`)
}

func TestList_NilBecomesEmptyList(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		listFn: func(_ context.Context, _, _ int) ([]domain.StoredWord, error) {
			return nil, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"words":[]}`, rec.Body.String())
}

func TestList_StoreError(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		listFn: func(_ context.Context, _, _ int) ([]domain.StoredWord, error) {
			return nil, errors.New("database is locked")
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is locked", "internal details must not leak")
}

func TestSearch_PassesQuery(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		searchFn: func(_ context.Context, query string) ([]domain.StoredWord, error) {
			assert.Equal(t, "run", query)
			return []domain.StoredWord{}, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/search?q=run", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		deleteFn: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(7), id)
			return nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/words/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		deleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrNotFound
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/words/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewWordsHandler(&vocabServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/words/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavorite_Handler(t *testing.T) {
	t.Parallel()

	svc := &vocabServiceMock{
		toggleFavoriteFn: func(_ context.Context, id int64) (bool, error) {
			assert.Equal(t, int64(7), id)
			return true, nil
		},
	}
	h := NewWordsHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/words/7/favorite", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	h.ToggleFavorite(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"favorite":true}`, rec.Body.String())
}
