// Package debounce collapses bursts of value updates into a single delayed
// callback.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the last pushed value to fn once delay has passed
// without a newer push. It owns exactly one timer at a time.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	gen     uint64
	stopped bool

	// held while fn runs so Stop can wait for an in-progress callback
	runMu sync.Mutex
}

// New creates a debouncer that calls fn with the settled value
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Delay returns the configured debounce interval
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Push replaces the pending value and restarts the timer
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = v
	d.armed = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Flush delivers the pending value immediately, if there is one
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.stopped || !d.armed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	d.fire(gen)
}

// Pending reports whether a value is waiting to be delivered
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed && !d.stopped
}

// Stop cancels the pending timer. Once Stop returns no callback is running
// and none will start; later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.armed = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	// wait out a callback that passed the generation check before Stop
	d.runMu.Lock()
	d.runMu.Unlock()
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	if d.stopped || gen != d.gen || !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.pending
	var zero T
	d.pending = zero
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}
