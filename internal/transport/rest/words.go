package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pymage/pymage-backend/internal/domain"
)

// vocabService defines the saved-word operations the handler needs.
type vocabService interface {
	SaveWord(ctx context.Context, word, sourceLang string) (*int64, error)
	Exists(ctx context.Context, word string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.StoredWord, error)
	Search(ctx context.Context, query string) ([]domain.StoredWord, error)
	Favorites(ctx context.Context) ([]domain.StoredWord, error)
	Delete(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
}

// WordsHandler serves the saved-word CRUD endpoints.
type WordsHandler struct {
	vocab vocabService
	log   *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(vocab vocabService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{
		vocab: vocab,
		log:   logger.With("handler", "words"),
	}
}

// saveWordRequest is the JSON body for POST /api/words.
type saveWordRequest struct {
	Word           string `json:"word"`
	SourceLanguage string `json:"source_language"`
}

// saveWordResponse is the JSON body for POST /api/words. Duplicate saves
// succeed with saved=false and no ID.
type saveWordResponse struct {
	Saved bool   `json:"saved"`
	ID    *int64 `json:"id,omitempty"`
}

// Save handles POST /api/words.
func (h *WordsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	id, err := h.vocab.SaveWord(r.Context(), req.Word, req.SourceLanguage)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if id == nil {
		writeJSON(w, http.StatusOK, saveWordResponse{Saved: false})
		return
	}
	writeJSON(w, http.StatusCreated, saveWordResponse{Saved: true, ID: id})
}

// existsResponse is the JSON body for GET /api/words/exists.
type existsResponse struct {
	Word   string `json:"word"`
	Exists bool   `json:"exists"`
}

// Exists handles GET /api/words/exists?word=...
func (h *WordsHandler) Exists(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeBadRequest(w, "missing required query parameter: word")
		return
	}

	exists, err := h.vocab.Exists(r.Context(), word)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, existsResponse{Word: word, Exists: exists})
}

// wordListResponse is the JSON body for all list endpoints.
type wordListResponse struct {
	Words []domain.StoredWord `json:"words"`
}

// List handles GET /api/words?limit=...&offset=...
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	words, err := h.vocab.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordListResponse{Words: emptyIfNil(words)})
}

// Search handles GET /api/words/search?q=...
func (h *WordsHandler) Search(w http.ResponseWriter, r *http.Request) {
	words, err := h.vocab.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordListResponse{Words: emptyIfNil(words)})
}

// Favorites handles GET /api/words/favorites.
func (h *WordsHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	words, err := h.vocab.Favorites(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordListResponse{Words: emptyIfNil(words)})
}

// Delete handles DELETE /api/words/{id}.
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.vocab.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// favoriteResponse is the JSON body for POST /api/words/{id}/favorite.
type favoriteResponse struct {
	ID       int64 `json:"id"`
	Favorite bool  `json:"favorite"`
}

// ToggleFavorite handles POST /api/words/{id}/favorite.
func (h *WordsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	favorite, err := h.vocab.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{ID: id, Favorite: favorite})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid word id")
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func emptyIfNil(words []domain.StoredWord) []domain.StoredWord {
	if words == nil {
		return []domain.StoredWord{}
	}
	return words
}
