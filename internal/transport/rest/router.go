package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pymage/pymage-backend/internal/config"
	"github.com/pymage/pymage-backend/internal/transport/middleware"
)

// RouterDeps groups everything the HTTP router needs.
type RouterDeps struct {
	Lookup  lookupService
	Vocab   vocabService
	Speaker speaker
	Store   storePinger
	Version string
	Config  config.Config
	Logger  *slog.Logger
}

// NewRouter builds the full HTTP handler: routes plus the middleware chain.
// The returned stop function shuts down the rate limiter's cleanup goroutine.
func NewRouter(deps RouterDeps) (http.Handler, func()) {
	mux := http.NewServeMux()

	health := NewHealthHandler(deps.Store, deps.Version)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	lookup := NewLookupHandler(deps.Lookup, deps.Logger)
	mux.HandleFunc("GET /api/lookup", lookup.Lookup)
	mux.HandleFunc("GET /api/suggest", lookup.Suggest)

	words := NewWordsHandler(deps.Vocab, deps.Logger)
	mux.HandleFunc("POST /api/words", words.Save)
	mux.HandleFunc("GET /api/words", words.List)
	mux.HandleFunc("GET /api/words/exists", words.Exists)
	mux.HandleFunc("GET /api/words/search", words.Search)
	mux.HandleFunc("GET /api/words/favorites", words.Favorites)
	mux.HandleFunc("DELETE /api/words/{id}", words.Delete)
	mux.HandleFunc("POST /api/words/{id}/favorite", words.ToggleFavorite)

	speak := NewSpeakHandler(deps.Speaker, deps.Logger)
	mux.HandleFunc("POST /api/speak", speak.Speak)

	limiter := middleware.NewRateLimiter(time.Minute)

	handler := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		limiter.Limit(deps.Config.Server.RatePerMinute),
	)(mux)

	return handler, limiter.Stop
}
