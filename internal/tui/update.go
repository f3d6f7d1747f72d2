package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pagetable/internal/scroll"
	"github.com/javiermolinar/pagetable/internal/tui/commands"
	"github.com/javiermolinar/pagetable/internal/virtual"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.sync()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(m.width, m.height)
		m.clampOffset()
		m.notifyScroll()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.LoadMoreRequestedMsg:
		return m.loadMore()

	case commands.PageSettledMsg:
		m.pending = false
		if msg.Issued && m.state.Err == "" && m.state.HasMore && m.totalLines() <= m.layout.BodyH {
			// Nothing to scroll yet; let the bridge decide whether to keep filling.
			m.notifyScroll()
		}
		return m, nil

	case commands.ErrMsg:
		m.log.Error("tui", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(errorTTL)
		return m, clearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusTTL)
		return m, clearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// sync refreshes the controller snapshot and the validation memo.
func (m *Model) sync() {
	if m.ctrl == nil {
		return
	}
	m.state = m.ctrl.Snapshot()
	m.issues.refresh(m.state)
	if n := len(m.state.Records); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) busy() bool {
	return m.pending || m.state.Loading
}

func (m Model) loadMore() (tea.Model, tea.Cmd) {
	if m.state.Loading || !m.state.HasMore {
		return m, nil
	}
	m.pending = true
	return m, tea.Batch(commands.LoadMore(m.ctrl), m.spinner.Tick)
}

// moveCursor moves the selection by delta rows and scrolls it into view.
func (m Model) moveCursor(delta int) Model {
	n := len(m.state.Records)
	if n == 0 {
		return m
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.scrollToCursor()
	m.notifyScroll()
	return m
}

// scrollBy scrolls the viewport by delta lines and keeps the cursor on screen.
func (m Model) scrollBy(delta int) Model {
	m.offset += delta
	m.clampOffset()

	if n := len(m.state.Records); n > 0 {
		first := virtual.FirstVisible(m.offset, m.rowHeight)
		last := virtual.FirstVisible(m.offset+m.layout.BodyH-1, m.rowHeight)
		m.cursor = min(max(m.cursor, first), min(last, n-1))
		if delta > 0 && m.offset >= m.totalLines()-m.layout.BodyH {
			// Rows under the estimate's bottom only show once the cursor
			// reaches the bottom-aligned tail.
			m.cursor = max(m.cursor, m.tailStart())
		}
	}
	m.notifyScroll()
	return m
}

func (m *Model) scrollToCursor() {
	top := m.cursor * m.rowHeight
	bottom := top + m.rowHeight
	switch {
	case top < m.offset:
		m.offset = top
	case bottom > m.offset+m.layout.BodyH:
		m.offset = bottom - m.layout.BodyH
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	m.offset = virtual.ClampOffset(m.offset, m.totalLines(), m.layout.BodyH)
}

func (m Model) geometry() scroll.Geometry {
	return scroll.Geometry{
		Offset:       m.offset,
		Viewport:     m.layout.BodyH,
		ScrollHeight: m.totalLines(),
	}
}

func (m Model) notifyScroll() {
	if m.onScroll == nil || m.height <= 0 || m.layout.BodyH <= 0 {
		return
	}
	m.onScroll(m.geometry())
}
