package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnGap   = 2
	warningIcon = "⚠"
	trackGlyph  = "│"
	thumbGlyph  = "┃"
)

// Row is a materialized table row with its display cells and any
// validation warnings.
type Row struct {
	Index    int
	Cells    []string
	Warnings []string
}

// Lines returns how many terminal lines the row occupies.
func (r Row) Lines(rowHeight int) int {
	return max(rowHeight, 1+len(r.Warnings))
}

// TableStyles holds the styles used to paint the table.
type TableStyles struct {
	Header      lipgloss.Style
	Row         lipgloss.Style
	RowAlt      lipgloss.Style
	Selected    lipgloss.Style
	Warning     lipgloss.Style
	Track       lipgloss.Style
	Thumb       lipgloss.Style
	Placeholder lipgloss.Style
	Blank       lipgloss.Style
}

// TableViewState holds data needed to render the users table.
type TableViewState struct {
	InnerW      int
	GridH       int // header plus body lines
	Headers     []string
	Weights     []int
	Rows        []Row // rows from the first visible one onward
	SkipLines   int   // lines of Rows[0] scrolled above the viewport
	RowHeight   int
	Selected    int
	Scroll      Scrollbar
	Placeholder string
	Styles      TableStyles
	Render      bool
}

// BodyHeight returns the number of lines available for rows.
func (s TableViewState) BodyHeight() int {
	return max(s.GridH-1, 0)
}

// RenderTable renders the header, the visible rows with their warning
// blocks, and a scrollbar on the right edge.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH <= 0 || state.InnerW < 2 {
		return ""
	}

	contentW := state.InnerW - 1
	widths := ColumnWidths(contentW-2, columnGap, state.Weights)
	bodyH := state.BodyHeight()

	lines := make([]string, 0, state.GridH)
	lines = append(lines, state.Styles.Header.Render(formatCells(state.Headers, widths))+state.Styles.Blank.Render(" "))

	body := renderBody(state, widths, contentW, bodyH)
	thumbStart, thumbLen := state.Scroll.Thumb(bodyH)
	for i, line := range body {
		bar := state.Styles.Blank.Render(" ")
		if thumbLen > 0 {
			bar = state.Styles.Track.Render(trackGlyph)
			if i >= thumbStart && i < thumbStart+thumbLen {
				bar = state.Styles.Thumb.Render(thumbGlyph)
			}
		}
		lines = append(lines, line+bar)
	}

	return strings.Join(lines, "\n")
}

func renderBody(state TableViewState, widths []int, contentW, bodyH int) []string {
	if bodyH <= 0 {
		return nil
	}

	want := bodyH + max(state.SkipLines, 0)
	lines := make([]string, 0, want)

	if len(state.Rows) == 0 && state.Placeholder != "" {
		lines = append(lines, state.Styles.Placeholder.Render(Fit(" "+state.Placeholder, contentW)))
		want = bodyH
	}

	for _, row := range state.Rows {
		if len(lines) >= want {
			break
		}
		style := state.Styles.Row
		if row.Index%2 == 1 {
			style = state.Styles.RowAlt
		}
		if row.Index == state.Selected {
			style = state.Styles.Selected
		}

		lines = append(lines, style.Render(formatCells(row.Cells, widths)))
		for _, w := range row.Warnings {
			lines = append(lines, state.Styles.Warning.Render(Fit("   "+warningIcon+" "+w, contentW)))
		}
		for extra := row.Lines(state.RowHeight) - 1 - len(row.Warnings); extra > 0; extra-- {
			lines = append(lines, style.Render(strings.Repeat(" ", contentW)))
		}
	}

	if len(state.Rows) > 0 {
		skip := min(max(state.SkipLines, 0), len(lines))
		lines = lines[skip:]
	}
	if len(lines) > bodyH {
		lines = lines[:bodyH]
	}
	for len(lines) < bodyH {
		lines = append(lines, state.Styles.Blank.Render(strings.Repeat(" ", contentW)))
	}
	return lines
}

// formatCells lays cells out in fixed-width columns with one cell of
// padding on each side.
func formatCells(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteByte(' ')
	for i, w := range widths {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(Fit(cell, w))
	}
	b.WriteByte(' ')
	return b.String()
}
