package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pymage/pymage-backend/internal/domain"
)

// lookupService defines the lookup operations the handler needs.
type lookupService interface {
	FetchBlocking(ctx context.Context, query domain.WordQuery) domain.WordRecord
	Suggest(ctx context.Context, prefix string) []string
}

// LookupHandler serves dictionary lookup and suggestion endpoints.
type LookupHandler struct {
	lookup lookupService
	log    *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(lookup lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		lookup: lookup,
		log:    logger.With("handler", "lookup"),
	}
}

// Lookup handles GET /api/lookup?word=...&lang=...&variant=...
//
// Always responds 200 with a word record; lookup failures are reported
// inside the record's error fields so the client can render them inline.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeBadRequest(w, "missing required query parameter: word")
		return
	}

	query := domain.WordQuery{
		Word:           word,
		SourceLanguage: r.URL.Query().Get("lang"),
		Variant:        r.URL.Query().Get("variant"),
	}

	record := h.lookup.FetchBlocking(r.Context(), query)
	writeJSON(w, http.StatusOK, record)
}

// suggestResponse is the JSON body for GET /api/suggest.
type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest handles GET /api/suggest?q=...
func (h *LookupHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("q")

	suggestions := h.lookup.Suggest(r.Context(), prefix)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}
