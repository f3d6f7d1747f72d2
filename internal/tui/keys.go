package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pagetable/internal/tui/commands"
)

const wheelLines = 3

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Log("KEY", map[string]any{"key": key, "cursor": m.cursor, "offset": m.offset})

	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showDetail {
		return m.handleDetailKeys(key)
	}

	page := max(m.layout.BodyH/m.rowHeight, 1)

	switch key {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		return m.moveCursor(1), nil
	case "k", "up":
		return m.moveCursor(-1), nil
	case "pgdown", "ctrl+f", " ":
		return m.moveCursor(page), nil
	case "pgup", "ctrl+b":
		return m.moveCursor(-page), nil
	case "ctrl+d":
		return m.moveCursor(max(page/2, 1)), nil
	case "ctrl+u":
		return m.moveCursor(-max(page/2, 1)), nil
	case "g", "home":
		return m.moveCursor(-len(m.state.Records)), nil
	case "G", "end":
		return m.moveCursor(len(m.state.Records)), nil

	// Actions
	case "r":
		if m.state.Err == "" {
			return m, nil
		}
		return m.loadMore()
	case "y":
		email := ""
		if rec, ok := m.selected(); ok && rec.Email.IsString() {
			email = rec.Email.String()
		}
		return m, commands.Copy("email", email, m.clip)
	case "enter":
		if _, ok := m.selected(); ok {
			m.showDetail = true
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "enter", "q":
		m.showDetail = false
	case "y":
		email := ""
		if rec, ok := m.selected(); ok && rec.Email.IsString() {
			email = rec.Email.String()
		}
		return m, commands.Copy("email", email, m.clip)
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showDetail || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelLines), nil
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelLines), nil
	}
	return m, nil
}
