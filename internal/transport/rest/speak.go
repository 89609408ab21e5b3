package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pymage/pymage-backend/internal/speech"
)

// speaker defines the pronunciation playback operation the handler needs.
type speaker interface {
	Speak(ctx context.Context, word, langCode string) error
}

// SpeakHandler serves the pronunciation playback endpoint.
type SpeakHandler struct {
	speaker speaker
	log     *slog.Logger
}

// NewSpeakHandler creates a SpeakHandler.
func NewSpeakHandler(s speaker, logger *slog.Logger) *SpeakHandler {
	return &SpeakHandler{
		speaker: s,
		log:     logger.With("handler", "speak"),
	}
}

// speakRequest is the JSON body for POST /api/speak.
type speakRequest struct {
	Word           string `json:"word"`
	SourceLanguage string `json:"source_language"`
}

// Speak handles POST /api/speak. Playback is synchronous: the response
// is sent after the word has been spoken or every backend has failed.
func (h *SpeakHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		writeBadRequest(w, "word must not be empty")
		return
	}

	if err := h.speaker.Speak(r.Context(), word, speech.LangCode(req.SourceLanguage)); err != nil {
		h.log.Error("speak failed", slog.String("word", word), slog.Any("error", err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "speech playback failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
