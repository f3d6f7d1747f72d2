// Package tui provides the terminal user interface for pagetable.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pagetable/internal/client"
	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/debuglog"
	"github.com/javiermolinar/pagetable/internal/pager"
	"github.com/javiermolinar/pagetable/internal/scroll"
	"github.com/javiermolinar/pagetable/internal/tui/commands"
	"github.com/javiermolinar/pagetable/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctrl   *pager.Controller
	config *config.Config
	log    *debuglog.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Latest controller snapshot and derived validation results
	state  pager.State
	issues *issueCache

	// Components
	spinner spinner.Model
	pending bool // a load command has been dispatched and not yet settled

	// Terminal dimensions and layout
	width     int
	height    int
	layout    LayoutCache
	rowHeight int // estimated lines per row
	overscan  int

	// Navigation
	cursor     int // selected record index
	offset     int // scroll offset in lines
	showDetail bool

	// onScroll receives scroll geometry after every scroll event.
	onScroll func(scroll.Geometry)
	clip     func(string) error

	// Messages
	statusMsg  string
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(l *debuglog.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
		m.issues.log = l
	}
}

// WithScrollListener registers a function that observes scroll geometry.
func WithScrollListener(fn func(scroll.Geometry)) ModelOption {
	return func(m *Model) {
		m.onScroll = fn
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.clip = write
	}
}

// New creates a new TUI model over a pagination controller.
func New(ctrl *pager.Controller, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		ctrl:      ctrl,
		config:    cfg,
		theme:     t,
		styles:    styles,
		issues:    newIssueCache(nil),
		spinner:   sp,
		rowHeight: max(cfg.Table.RowHeight, 1),
		overscan:  max(cfg.Table.Overscan, 0),
		clip:      clipboard.WriteAll,
	}
	m.layout = m.buildLayoutCache(0, 0)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts loading the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(commands.Start(m.ctrl), m.spinner.Tick)
}

// Run starts the TUI against the data source configured in cfg.
func Run(cfg *config.Config, debug bool) error {
	logger, err := debuglog.Open(debug, debuglog.DefaultPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	timeout, err := cfg.ClientTimeout()
	if err != nil {
		return err
	}
	c, err := client.New(cfg.Client.BaseURL, client.WithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	ctrl := pager.New(clientFetcher(c),
		pager.WithPageSize(cfg.Client.PageSize),
		pager.WithLogger(logger),
	)
	defer ctrl.Close()

	var program *tea.Program
	bridge := scroll.New(
		scroll.Config{Delay: cfg.Debounce(), Threshold: cfg.Table.LoadThreshold},
		func() (bool, bool) {
			s := ctrl.Snapshot()
			return s.HasMore, s.Loading
		},
		func() { program.Send(commands.LoadMoreRequestedMsg{}) },
		scroll.WithLogger(logger),
	)
	defer bridge.Close()

	model := New(ctrl, cfg, WithLogger(logger), WithScrollListener(bridge.Notify))
	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}
