// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Pager is the part of the pagination controller the TUI drives.
type Pager interface {
	Start(ctx context.Context) bool
	LoadMore(ctx context.Context) bool
}

// LoadMoreRequestedMsg is posted by the scroll bridge when the viewport nears
// the end of the loaded records.
type LoadMoreRequestedMsg struct{}

// PageSettledMsg is sent when a load attempt finishes. Issued is false when
// the controller declined to fetch (already loading, exhausted, or closed).
type PageSettledMsg struct {
	Issued bool
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Start loads the first page.
func Start(p Pager) tea.Cmd {
	return func() tea.Msg {
		return PageSettledMsg{Issued: p.Start(context.Background())}
	}
}

// LoadMore fetches the next page.
func LoadMore(p Pager) tea.Cmd {
	return func() tea.Msg {
		return PageSettledMsg{Issued: p.LoadMore(context.Background())}
	}
}

// Copy writes text to the clipboard and reports the outcome as a status.
func Copy(label, text string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: fmt.Sprintf("No %s to copy", label)}
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Copied %s", label)}
	}
}
