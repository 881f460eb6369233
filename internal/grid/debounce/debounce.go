// Package debounce provides a collapsing debounce: rapid repeated calls within
// the wait window collapse into one invocation of the wrapped function, and
// every caller that arrived during the window observes that single result.
package debounce

import (
	"sync"
	"time"
)

// Result is delivered to every caller of a debounced function once the wait
// window closes or the debouncer is cancelled.
type Result[R any] struct {
	// Value is the output of the single underlying invocation. It is the
	// zero value when Cancelled is true.
	Value R
	// Cancelled marks results delivered by Cancel instead of an invocation.
	Cancelled bool
}

// Debouncer wraps a function so that only the last call within the wait window
// is executed. Each Debouncer owns exactly one timer handle; it must be
// cancelled when its owner is torn down so a stale callback cannot fire into
// state that no longer exists.
type Debouncer[A, R any] struct {
	mu      sync.Mutex
	fn      func(A) R
	wait    time.Duration
	timer   *time.Timer
	lastArg A
	waiters []chan Result[R]
}

// New builds a Debouncer around fn with the provided wait window.
func New[A, R any](fn func(A) R, wait time.Duration) *Debouncer[A, R] {
	return &Debouncer[A, R]{
		fn:   fn,
		wait: wait,
	}
}

// Call schedules an invocation of the wrapped function with arg. Any pending
// timer is reset, so only the final call's argument reaches the function. The
// returned channel receives exactly one Result, shared with every other caller
// in the same window, and is then closed.
func (d *Debouncer[A, R]) Call(arg A) <-chan Result[R] {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan Result[R], 1)
	d.waiters = append(d.waiters, ch)
	d.lastArg = arg

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)

	return ch
}

// Cancel clears any pending timer and resolves outstanding callers with a
// cancelled result rather than leaving them hanging.
func (d *Debouncer[A, R]) Cancel() {
	d.mu.Lock()
	waiters := d.waiters
	d.waiters = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	for _, ch := range waiters {
		ch <- Result[R]{Cancelled: true}
		close(ch)
	}
}

func (d *Debouncer[A, R]) fire() {
	d.mu.Lock()
	waiters := d.waiters
	arg := d.lastArg
	d.waiters = nil
	d.timer = nil
	d.mu.Unlock()

	if len(waiters) == 0 {
		return
	}

	value := d.fn(arg)
	for _, ch := range waiters {
		ch <- Result[R]{Value: value}
		close(ch)
	}
}
