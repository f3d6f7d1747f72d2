package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the content and styles of the footer.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	StatusText  string // left side, e.g. spinner or error
	InfoText    string // right side, e.g. record counts
	HelpText    string
	StatusStyle lipgloss.Style
	InfoStyle   lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the status line and, when there is room, the help line.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 || state.InnerW <= 0 {
		return ""
	}

	lines := []string{statusLine(state)}
	if state.FooterH > 1 {
		lines = append(lines, footerLine(state.InnerW, state.HelpStyle, state.HelpText))
	}
	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Bottom, strings.Join(lines, "\n"), state.Bg)
}

func statusLine(state FooterViewState) string {
	info := state.InfoText
	infoW := ansi.StringWidth(info)
	if infoW >= state.InnerW {
		return footerLine(state.InnerW, state.InfoStyle, info)
	}
	left := footerLine(state.InnerW-infoW, state.StatusStyle, state.StatusText)
	return left + state.InfoStyle.Render(info)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	return style.Render(Fit(content, contentWidth))
}
