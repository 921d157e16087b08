package client

import (
	"context"
	"sync"
)

// Pending is an in-flight fetch started by Fetch.
type Pending struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	canceled bool
}

// Fetch runs fn on its own goroutine and hands the outcome to deliver.
//
// Once Cancel has returned, deliver is never invoked: a view being torn down
// cancels its pending fetches and can drop its state without racing a late
// callback. If deliver is already running when Cancel is called, Cancel waits
// for it to return; deliver must therefore not call Cancel on its own Pending.
func Fetch[T any](ctx context.Context, fn func(context.Context) (T, error), deliver func(T, error)) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		defer cancel()

		v, err := fn(ctx)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.canceled {
			return
		}
		if deliver != nil {
			deliver(v, err)
		}
	}()
	return p
}

// Cancel aborts the request and suppresses delivery. Safe to call more than once.
func (p *Pending) Cancel() {
	p.mu.Lock()
	p.canceled = true
	p.mu.Unlock()
	p.cancel()
}

// Wait blocks until the fetch has settled (delivered or suppressed) or ctx is done.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the fetch goroutine has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }
