package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}

// Fit truncates s to width cells (with an ellipsis) and pads it with spaces.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// ColumnWidths splits total cells between columns by weight, leaving gap
// cells between adjacent columns. The last column absorbs rounding.
func ColumnWidths(total, gap int, weights []int) []int {
	widths := make([]int, len(weights))
	if len(weights) == 0 {
		return widths
	}
	avail := total - gap*(len(weights)-1)
	if avail <= 0 {
		return widths
	}

	sum := 0
	for _, w := range weights {
		sum += max(w, 0)
	}
	if sum == 0 {
		return widths
	}

	used := 0
	for i, w := range weights[:len(weights)-1] {
		widths[i] = avail * max(w, 0) / sum
		used += widths[i]
	}
	widths[len(widths)-1] = avail - used
	return widths
}

// RenderModalOverlay centers modalContent and splices it over the base content.
func RenderModalOverlay(baseContent, modalContent string, width, height int, modalBg lipgloss.Color) string {
	modalLines := strings.Split(modalContent, "\n")
	modalHeight := min(len(modalLines), height)
	if modalHeight == 0 {
		return baseContent
	}
	modalLines = modalLines[:modalHeight]

	modalWidth := 0
	for _, line := range modalLines {
		modalWidth = max(modalWidth, lipgloss.Width(line))
	}
	if modalWidth == 0 {
		return baseContent
	}
	modalWidth = min(modalWidth, width)

	top := max((height-modalHeight)/2, 0)
	left := max((width-modalWidth)/2, 0)

	paddingStyle := lipgloss.NewStyle().Background(modalBg)
	for i, line := range modalLines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > modalWidth {
			line = ansi.Cut(line, 0, modalWidth)
		}
		if lineWidth < modalWidth {
			line += paddingStyle.Render(strings.Repeat(" ", modalWidth-lineWidth))
		}
		modalLines[i] = line + ansi.ResetStyle
	}

	baseLines := strings.Split(PadLinesWithBackground(baseContent, width, height, lipgloss.Color("")), "\n")

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		baseLine := ""
		if row < len(baseLines) {
			baseLine = baseLines[row]
		}
		if row < top || row >= top+modalHeight {
			lines = append(lines, baseLine)
			continue
		}
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+modalWidth, width)
		lines = append(lines, leftSlice+modalLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}
