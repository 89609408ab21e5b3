package lookup

import "context"

// Dispatcher is a single-consumer serial task queue. Background fetches post
// their completion callbacks here instead of invoking them directly, so a
// caller with thread-affine state (a UI event loop, typically) sees every
// result on one goroutine, in post order.
type Dispatcher struct {
	tasks chan func()
}

// NewDispatcher creates a Dispatcher with the given queue depth.
func NewDispatcher(buffer int) *Dispatcher {
	return &Dispatcher{tasks: make(chan func(), buffer)}
}

// Post enqueues fn for execution on the dispatch goroutine. Safe to call
// from any goroutine; blocks when the queue is full.
func (d *Dispatcher) Post(fn func()) {
	d.tasks <- fn
}

// Run consumes and executes posted tasks until ctx is cancelled. Exactly one
// Run loop must be active per Dispatcher.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-d.tasks:
			fn()
		}
	}
}
