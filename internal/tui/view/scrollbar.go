package view

// Scrollbar describes scroll geometry in lines.
type Scrollbar struct {
	Total    int // total scrollable height
	Viewport int // visible height
	Offset   int // scroll offset from the top
}

// Thumb returns the first track cell of the thumb and its length for a track
// of height cells. It returns (0, 0) when everything fits.
func (s Scrollbar) Thumb(height int) (start, length int) {
	if height <= 0 || s.Viewport <= 0 || s.Total <= s.Viewport {
		return 0, 0
	}
	length = max(1, height*s.Viewport/s.Total)
	length = min(length, height)

	maxOffset := s.Total - s.Viewport
	offset := min(max(s.Offset, 0), maxOffset)
	start = (height - length) * offset / maxOffset
	return start, length
}
