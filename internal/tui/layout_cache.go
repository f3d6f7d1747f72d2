package tui

import "github.com/charmbracelet/lipgloss"

const (
	footerFull     = 2
	footerCompact  = 1
	footerFullMinH = 6
	minGridHeight  = 2
	headerLines    = 1
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	GridH   int // header plus body
	BodyH   int // lines available for rows; the scroll viewport

	StatusStyle lipgloss.Style
	InfoStyle   lipgloss.Style
	HelpStyle   lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	footerH := footerCompact
	if innerH >= footerFullMinH {
		footerH = footerFull
	}

	gridH := max(innerH-footerH, minGridHeight)

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		FooterH:     footerH,
		GridH:       gridH,
		BodyH:       gridH - headerLines,
		StatusStyle: styles.StatusStyle,
		InfoStyle:   styles.InfoStyle,
		HelpStyle:   styles.HelpStyle,
	}
}
