// Package pager accumulates pages of user records fetched from the data
// source, one page at a time and strictly in order.
package pager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/javiermolinar/pagetable/internal/debuglog"
	"github.com/javiermolinar/pagetable/internal/user"
)

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = 50

var errInterrupted = errors.New("fetch interrupted")

// Page is one page of records plus the total number of records available.
type Page struct {
	Records []user.Record
	Total   int
}

// Fetcher retrieves a single page. Pages are 1-based.
type Fetcher interface {
	Fetch(ctx context.Context, page, limit int) (Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, page, limit int) (Page, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, page, limit int) (Page, error) {
	return f(ctx, page, limit)
}

// Phase is the controller's position in its load cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseExhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a consistent copy of the controller state.
type State struct {
	Records  []user.Record
	NextPage int
	HasMore  bool
	Loading  bool
	Err      string
	// Version increases by one every time records are appended.
	Version uint64
}

// Phase derives the load-cycle phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseFetching
	case !s.HasMore:
		return PhaseExhausted
	default:
		return PhaseIdle
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the page size. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *debuglog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the accumulated records and the page cursor.
// It is safe for concurrent use; at most one fetch is in flight at a time.
type Controller struct {
	fetcher  Fetcher
	pageSize int
	log      *debuglog.Logger

	life      context.Context
	cancel    context.CancelFunc
	startOnce sync.Once

	mu       sync.Mutex
	records  []user.Record
	nextPage int
	hasMore  bool
	loading  bool
	err      string
	version  uint64
	closed   bool
}

// New creates a controller positioned before page 1.
func New(f Fetcher, opts ...Option) *Controller {
	life, cancel := context.WithCancel(context.Background())
	c := &Controller{
		fetcher:  f,
		pageSize: DefaultPageSize,
		life:     life,
		cancel:   cancel,
		nextPage: 1,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageSize returns the configured page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Start loads the first page. Only the first call has any effect.
func (c *Controller) Start(ctx context.Context) bool {
	started := false
	c.startOnce.Do(func() {
		started = c.LoadMore(ctx)
	})
	return started
}

// LoadMore fetches the next page and reports whether a fetch was issued.
// It is a no-op while a fetch is in flight, after the last page, or after Close.
// A failed fetch records the error and leaves records and cursor untouched,
// so calling LoadMore again retries the same page.
func (c *Controller) LoadMore(ctx context.Context) bool {
	page, ok := c.begin()
	if !ok {
		return false
	}

	res, err := Page{}, errInterrupted
	defer func() { c.settle(page, res, err) }()

	c.log.Log("PAGE_REQUEST", map[string]any{"page": page, "limit": c.pageSize})

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.life, cancel)
	defer func() {
		stop()
		cancel()
	}()

	res, err = c.fetcher.Fetch(ctx, page, c.pageSize)
	return true
}

func (c *Controller) begin() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.loading || !c.hasMore {
		return 0, false
	}
	c.loading = true
	return c.nextPage, true
}

func (c *Controller) settle(page int, res Page, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if c.closed {
		c.log.Log("PAGE_DISCARDED", map[string]any{"page": page})
		return
	}
	if err != nil {
		c.err = fmt.Sprintf("failed to load page %d: %v", page, err)
		c.log.Error("load page", err)
		return
	}

	c.records = append(c.records, res.Records...)
	c.hasMore = page*c.pageSize < res.Total
	c.nextPage = page + 1
	c.err = ""
	c.version++

	c.log.Log("PAGE_LOADED", map[string]any{
		"page":     page,
		"received": len(res.Records),
		"total":    res.Total,
		"records":  len(c.records),
		"has_more": c.hasMore,
	})
}

// Snapshot returns the current state. The returned Records slice is
// capped, so appending to it never touches the controller's storage.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.records)
	return State{
		Records:  c.records[:n:n],
		NextPage: c.nextPage,
		HasMore:  c.hasMore,
		Loading:  c.loading,
		Err:      c.err,
		Version:  c.version,
	}
}

// Close cancels any in-flight fetch and discards its result.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}
