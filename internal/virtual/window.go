// Package virtual computes which rows of a long list need to be materialized
// for a given scroll position, using a fixed row-height estimate.
package virtual

// Params describes the list and the viewport. All lengths share one unit
// (terminal lines in the TUI).
type Params struct {
	Count     int // number of rows
	RowHeight int // estimated height of every row
	Viewport  int // visible height
	Offset    int // scroll offset from the top
	Overscan  int // extra rows rendered on each side of the viewport
}

// Item is a materialized row and its absolute start offset.
type Item struct {
	Index int
	Start int
}

// Window is the range of rows to materialize. Hi < Lo when nothing is visible.
type Window struct {
	Lo        int
	Hi        int
	Items     []Item
	TotalSize int
}

// Len returns the number of materialized rows.
func (w Window) Len() int {
	if w.Hi < w.Lo {
		return 0
	}
	return w.Hi - w.Lo + 1
}

// Contains reports whether index is materialized.
func (w Window) Contains(index int) bool {
	return index >= w.Lo && index <= w.Hi
}

// Compute returns the smallest row range covering
// [Offset - Overscan*RowHeight, Offset + Viewport + Overscan*RowHeight),
// clamped to the existing rows.
func Compute(p Params) Window {
	h := max(p.RowHeight, 1)
	total := max(p.Count, 0) * h
	w := Window{Lo: 0, Hi: -1, TotalSize: total}
	if p.Count <= 0 || p.Viewport <= 0 {
		return w
	}

	overscan := max(p.Overscan, 0) * h
	top := p.Offset - overscan
	bottom := p.Offset + p.Viewport + overscan

	lo := 0
	if top > 0 {
		lo = top / h
	}
	hi := p.Count - 1
	if bottom <= 0 {
		return w
	}
	if last := (bottom - 1) / h; last < hi {
		hi = last
	}
	if lo > hi {
		return w
	}

	w.Lo, w.Hi = lo, hi
	w.Items = make([]Item, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		w.Items = append(w.Items, Item{Index: i, Start: i * h})
	}
	return w
}

// ClampOffset keeps offset within [0, total-viewport].
func ClampOffset(offset, total, viewport int) int {
	maxOffset := max(total-viewport, 0)
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// FirstVisible returns the index of the row at the top of the viewport.
func FirstVisible(offset, rowHeight int) int {
	return max(offset, 0) / max(rowHeight, 1)
}
