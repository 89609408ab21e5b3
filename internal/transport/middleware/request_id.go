package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pymage/pymage-backend/pkg/ctxutil"
)

// RequestID attaches an identifier to every request, honoring one supplied
// by the client and echoing it back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
