package tui

import (
	"github.com/javiermolinar/pagetable/internal/tui/view"
	"github.com/javiermolinar/pagetable/internal/user"
	"github.com/javiermolinar/pagetable/internal/virtual"
)

// columnWeights sizes Name, Email, Phone and Company (City).
var columnWeights = []int{3, 4, 3, 4}

// window computes the materialized row range for the current scroll state.
func (m Model) window() virtual.Window {
	return virtual.Compute(virtual.Params{
		Count:     len(m.state.Records),
		RowHeight: m.rowHeight,
		Viewport:  m.layout.BodyH,
		Offset:    m.offset,
		Overscan:  m.overscan,
	})
}

// materialize builds display rows for the window. Rows above the first
// visible one are dropped here; the view only paints from the viewport top.
func (m Model) materialize(w virtual.Window) (rows []view.Row, skip int) {
	if w.Len() == 0 {
		return nil, 0
	}
	first := max(virtual.FirstVisible(m.offset, m.rowHeight), w.Lo)
	skip = max(m.offset-first*m.rowHeight, 0)

	rows = make([]view.Row, 0, w.Hi-first+1)
	painted := 0
	cursorTop, cursorBottom := -1, -1
	for _, item := range w.Items {
		if item.Index < first {
			continue
		}
		rec := m.state.Records[item.Index]
		row := view.Row{
			Index:    item.Index,
			Cells:    user.Columns(rec),
			Warnings: m.issues.get(item.Index),
		}
		if item.Index == m.cursor {
			cursorTop = painted
			cursorBottom = painted + row.Lines(m.rowHeight)
		}
		painted += row.Lines(m.rowHeight)
		rows = append(rows, row)
	}

	atEnd := w.Hi == len(m.state.Records)-1 && m.offset >= m.totalLines()-m.layout.BodyH
	return rows, m.paintSkip(skip, painted, atEnd, cursorTop, cursorBottom)
}

// paintSkip adjusts the lines cropped off the top of the painted rows.
// Warning lines are not part of the row estimate, so at the end of the list
// the rows are bottom-aligned, and the selected row is always kept fully on
// screen (its top wins when it is taller than the viewport).
func (m Model) paintSkip(skip, painted int, atEnd bool, cursorTop, cursorBottom int) int {
	bodyH := m.layout.BodyH
	if atEnd {
		skip = max(skip, painted-bodyH)
	}
	if cursorTop >= 0 {
		if cursorBottom > skip+bodyH {
			skip = cursorBottom - bodyH
		}
		if cursorTop < skip {
			skip = cursorTop
		}
	}
	return max(skip, 0)
}

// rowLines is the painted height of row i, warning lines included.
func (m Model) rowLines(i int) int {
	return max(m.rowHeight, 1+len(m.issues.get(i)))
}

// tailStart returns the first row on screen when the end of the list is
// painted bottom-aligned.
func (m Model) tailStart() int {
	n := len(m.state.Records)
	lines := 0
	for i := n - 1; i >= 0; i-- {
		lines += m.rowLines(i)
		if lines > m.layout.BodyH {
			return min(i+1, n-1)
		}
	}
	return 0
}

// totalLines is the estimated scrollable height.
func (m Model) totalLines() int {
	return len(m.state.Records) * m.rowHeight
}
