package lookup

import (
	"context"
	"sync/atomic"

	"github.com/pymage/pymage-backend/internal/domain"
)

// Session wraps the aggregator for one interactive consumer issuing rapid
// successive lookups. Each Fetch supersedes the previous one: a result that
// arrives after a newer request was issued is dropped instead of delivered,
// so a slow stale response can never overwrite a fresher one.
type Session struct {
	svc *Service
	seq atomic.Uint64
}

// NewSession creates a Session over the service.
func (s *Service) NewSession() *Session {
	return &Session{svc: s}
}

// Fetch issues a lookup that supersedes any earlier ones from this session.
// onComplete runs on the dispatch queue, and only if no newer Fetch has been
// issued by the time the result arrives.
func (sess *Session) Fetch(ctx context.Context, query domain.WordQuery, onComplete func(domain.WordRecord)) {
	id := sess.seq.Add(1)
	sess.svc.Fetch(ctx, query, func(rec domain.WordRecord) {
		if sess.seq.Load() != id {
			return
		}
		onComplete(rec)
	})
}
