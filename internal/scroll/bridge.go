// Package scroll turns scroll position changes into debounced "load more"
// requests when the viewport nears the end of the loaded rows.
package scroll

import (
	"sync"
	"time"

	"github.com/javiermolinar/pagetable/internal/debounce"
	"github.com/javiermolinar/pagetable/internal/debuglog"
)

const (
	// DefaultDelay is the quiet period after the last scroll event.
	DefaultDelay = 200 * time.Millisecond
	// DefaultThreshold is how close to the bottom, in lines, triggers a load.
	DefaultThreshold = 4
)

// Geometry is a snapshot of the scroll container.
type Geometry struct {
	Offset       int // distance scrolled from the top
	Viewport     int // visible height
	ScrollHeight int // total scrollable height
}

// NearBottom reports whether the viewport bottom is within threshold of the end.
func (g Geometry) NearBottom(threshold int) bool {
	return g.Offset+g.Viewport >= g.ScrollHeight-threshold
}

// Config holds bridge tuning.
type Config struct {
	Delay     time.Duration
	Threshold int
}

// StateFunc reports the pagination flags at evaluation time.
type StateFunc func() (hasMore, loading bool)

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the debug logger.
func WithLogger(l *debuglog.Logger) Option {
	return func(b *Bridge) {
		b.log = l
	}
}

// WithAfterFunc replaces the debounce scheduler.
func WithAfterFunc(after debounce.AfterFunc) Option {
	return func(b *Bridge) {
		b.debounceOpts = append(b.debounceOpts, debounce.WithAfterFunc(after))
	}
}

// Bridge watches scroll geometry and calls load when the user nears the end.
type Bridge struct {
	threshold    int
	state        StateFunc
	load         func()
	log          *debuglog.Logger
	debounceOpts []debounce.Option
	debouncer    *debounce.Debouncer

	mu     sync.Mutex
	last   Geometry
	closed bool
}

// New creates a bridge. A non-positive delay or a negative threshold falls
// back to the default. A zero threshold loads only at the very bottom.
func New(cfg Config, state StateFunc, load func(), opts ...Option) *Bridge {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Threshold < 0 {
		cfg.Threshold = DefaultThreshold
	}

	b := &Bridge{
		threshold: cfg.Threshold,
		state:     state,
		load:      load,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.debouncer = debounce.New(cfg.Delay, b.evaluate, b.debounceOpts...)
	return b
}

// Notify records the latest geometry and restarts the quiet period.
func (b *Bridge) Notify(g Geometry) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.last = g
	b.mu.Unlock()
	b.debouncer.Trigger()
}

func (b *Bridge) evaluate() {
	b.mu.Lock()
	g := b.last
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return
	}

	if !g.NearBottom(b.threshold) {
		return
	}
	hasMore, loading := b.state()
	if !hasMore || loading {
		return
	}

	b.log.Log("SCROLL_LOAD", map[string]any{
		"offset":        g.Offset,
		"viewport":      g.Viewport,
		"scroll_height": g.ScrollHeight,
	})
	b.load()
}

// Close detaches the bridge. Pending evaluations are cancelled.
func (b *Bridge) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.debouncer.Stop()
}
