package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock collects scheduled callbacks so tests can fire them by hand.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fireAll runs every scheduled callback, including stopped ones, to mimic
// timers that fired just before being stopped.
func (c *fakeClock) fireAll(includeStopped bool) {
	c.mu.Lock()
	timers := append([]*fakeTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range timers {
		if includeStopped || !t.stopped {
			t.fn()
		}
	}
}

func TestTriggerBurstFiresOnce(t *testing.T) {
	clock := &fakeClock{}
	var calls atomic.Int32
	d := New(200*time.Millisecond, func() { calls.Add(1) }, WithAfterFunc(clock.AfterFunc))

	for range 5 {
		d.Trigger()
	}

	if len(clock.timers) != 5 {
		t.Fatalf("timers = %d, want 5", len(clock.timers))
	}
	for i, tm := range clock.timers[:4] {
		if !tm.stopped {
			t.Errorf("timer %d should have been cancelled", i)
		}
	}
	if clock.timers[4].delay != 200*time.Millisecond {
		t.Errorf("delay = %v", clock.timers[4].delay)
	}

	clock.fireAll(true)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after firing")
	}
}

func TestStopCancelsPendingCall(t *testing.T) {
	clock := &fakeClock{}
	var calls atomic.Int32
	d := New(time.Second, func() { calls.Add(1) }, WithAfterFunc(clock.AfterFunc))

	d.Trigger()
	d.Stop()
	clock.fireAll(true)
	d.Trigger()

	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
	if len(clock.timers) != 1 {
		t.Errorf("trigger after stop should not schedule, timers = %d", len(clock.timers))
	}
}

func TestDebouncerWithRealTimer(t *testing.T) {
	fired := make(chan struct{}, 2)
	d := New(10*time.Millisecond, func() { fired <- struct{}{} })
	defer d.Stop()

	d.Trigger()
	d.Trigger()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never fired")
	}

	select {
	case <-fired:
		t.Fatal("burst fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}
