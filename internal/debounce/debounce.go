// Package debounce delays a callback until a burst of triggers has been
// quiet for a fixed period.
package debounce

import (
	"sync"
	"time"
)

// Timer is the handle of a scheduled callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithAfterFunc replaces the scheduler, typically with a fake clock in tests.
func WithAfterFunc(after AfterFunc) Option {
	return func(d *Debouncer) {
		d.after = after
	}
}

// Debouncer runs fn once per burst of Trigger calls, delay after the last one.
type Debouncer struct {
	delay time.Duration
	fn    func()
	after AfterFunc

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	stopped bool
}

// New creates a debouncer that calls fn.
func New(delay time.Duration, fn func(), opts ...Option) *Debouncer {
	d := &Debouncer{
		delay: delay,
		fn:    fn,
		after: realAfterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger cancels any pending call and schedules a new one.
func (d *Debouncer) Trigger() {
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
	d.timer = d.after(d.delay, func() { d.fire(gen) })
}

// fire runs fn unless a newer trigger or Stop superseded this schedule.
// A timer that already fired when Stop was called lands here too.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending call. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
