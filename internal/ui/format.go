package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/pagetable/internal/tui/view"
	"github.com/javiermolinar/pagetable/internal/user"
)

const (
	cellGap     = 2
	minRowWidth = 40
	ellipsis    = "…"
)

// columnWeights split the row width between the user columns.
var columnWeights = []int{3, 4, 3, 4}

// PrintOpts configures row printing behavior.
type PrintOpts struct {
	Width    int  // Total row width (0 = terminal width)
	Warnings bool // Print validation messages under invalid rows
}

// rowWidth returns the width rows are laid out in.
func (o PrintOpts) rowWidth() int {
	w := o.Width
	if w <= 0 {
		w = termWidth()
	}
	return max(w, minRowWidth)
}

// Stats summarizes one printed page.
type Stats struct {
	From    int // 1-based position of the first row, 0 when empty
	To      int
	Total   int
	Invalid int
}

// fitCell truncates s to width display columns and pads it to exactly width.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, ellipsis)
	return runewidth.FillRight(s, width)
}

// layout returns the index column width and the data column widths.
func layout(total, width int) (int, []int) {
	indexW := len(strconv.Itoa(max(total, 1)))
	// "⚠ " marker, index, gap
	rest := width - 2 - indexW - cellGap
	return indexW, view.ColumnWidths(rest, cellGap, columnWeights)
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		parts[i] = fitCell(c, w)
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", cellGap)), " ")
}

// PrintHeader prints the column titles.
func PrintHeader(w io.Writer, total int, opts PrintOpts) {
	indexW, widths := layout(total, opts.rowWidth())
	line := "  " + strings.Repeat(" ", indexW+cellGap) + joinCells(user.Headers, widths)
	_, _ = fmt.Fprintln(w, formatHeader(line))
}

// PrintUserRow prints a single record. index is the absolute 0-based position.
func PrintUserRow(w io.Writer, index int, r user.Record, total int, opts PrintOpts) bool {
	indexW, widths := layout(total, opts.rowWidth())
	problems := user.Validate(r)

	marker := "  "
	if len(problems) > 0 {
		marker = formatInvalid("⚠ ")
	}
	num := formatMuted(fmt.Sprintf("%*d", indexW, index+1))
	_, _ = fmt.Fprintf(w, "%s%s%s%s\n", marker, num, strings.Repeat(" ", cellGap), joinCells(user.Columns(r), widths))

	if opts.Warnings {
		pad := strings.Repeat(" ", 2+indexW+cellGap)
		for _, p := range problems {
			_, _ = fmt.Fprintln(w, pad+formatInvalid("⚠ "+p))
		}
	}
	return len(problems) > 0
}

// PrintStats prints the summary line for a page.
func PrintStats(w io.Writer, s Stats) {
	var shown string
	if s.From == 0 {
		shown = fmt.Sprintf("0 of %d users", s.Total)
	} else {
		shown = fmt.Sprintf("%d-%d of %d users", s.From, s.To, s.Total)
	}
	line := formatStats(shown)
	if s.Invalid > 0 {
		line += " | " + formatInvalid(fmt.Sprintf("%d invalid", s.Invalid))
	}
	_, _ = fmt.Fprintln(w, line)
}
