package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymage/pymage-backend/internal/domain"
)

type lookupServiceMock struct {
	fetchBlockingFn func(ctx context.Context, query domain.WordQuery) domain.WordRecord
	suggestFn       func(ctx context.Context, prefix string) []string
}

func (m *lookupServiceMock) FetchBlocking(ctx context.Context, query domain.WordQuery) domain.WordRecord {
	return m.fetchBlockingFn(ctx, query)
}

func (m *lookupServiceMock) Suggest(ctx context.Context, prefix string) []string {
	return m.suggestFn(ctx, prefix)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLookup_Success(t *testing.T) {
	t.Parallel()

	svc := &lookupServiceMock{
		fetchBlockingFn: func(_ context.Context, query domain.WordQuery) domain.WordRecord {
			assert.Equal(t, "hello", query.Word)
			assert.Equal(t, "English", query.SourceLanguage)
			assert.Equal(t, "Etymology 2", query.Variant)
			return domain.WordRecord{
				Word:             "hello",
				DefinitionsByPOS: map[string][]string{"noun": {"A greeting."}},
				Examples:         []string{"She said *hello* to everyone."},
			}
		},
	}
	h := NewLookupHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?word=hello&lang=English&variant=Etymology+2", nil)
	rec := httptest.NewRecorder()

	h.Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.WordRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got.Word)
	assert.Equal(t, []string{"A greeting."}, got.DefinitionsByPOS["noun"])
}

func TestLookup_MissingWord(t *testing.T) {
	t.Parallel()

	h := NewLookupHandler(&lookupServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/lookup", nil)
	rec := httptest.NewRecorder()

	h.Lookup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "word")
}

func TestLookup_ErrorRecordStillOK(t *testing.T) {
	t.Parallel()

	svc := &lookupServiceMock{
		fetchBlockingFn: func(_ context.Context, _ domain.WordQuery) domain.WordRecord {
			return domain.WordRecord{
				Word:      "zzyzx",
				Error:     "no entry found for 'zzyzx'",
				ErrorKind: domain.LookupErrNotFound,
			}
		},
	}
	h := NewLookupHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?word=zzyzx", nil)
	rec := httptest.NewRecorder()

	h.Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "lookup failures are carried inside the record")

	var got domain.WordRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.IsError())
	assert.Equal(t, domain.LookupErrNotFound, got.ErrorKind)
}

func TestSuggest_Success(t *testing.T) {
	t.Parallel()

	svc := &lookupServiceMock{
		suggestFn: func(_ context.Context, prefix string) []string {
			assert.Equal(t, "hel", prefix)
			return []string{"hello", "help", "helm"}
		},
	}
	h := NewLookupHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=hel", nil)
	rec := httptest.NewRecorder()

	h.Suggest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions":["hello","help","helm"]}`, rec.Body.String())
}

func TestSuggest_NilBecomesEmptyList(t *testing.T) {
	t.Parallel()

	svc := &lookupServiceMock{
		suggestFn: func(_ context.Context, _ string) []string { return nil },
	}
	h := NewLookupHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=", nil)
	rec := httptest.NewRecorder()

	h.Suggest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, rec.Body.String())
}
