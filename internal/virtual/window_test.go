package virtual

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		p         Params
		wantLo    int
		wantHi    int
		wantTotal int
	}{
		{
			name:      "top of list with overscan",
			p:         Params{Count: 100, RowHeight: 50, Viewport: 500, Offset: 0, Overscan: 10},
			wantLo:    0,
			wantHi:    19,
			wantTotal: 5000,
		},
		{
			name:      "middle of list",
			p:         Params{Count: 100, RowHeight: 50, Viewport: 500, Offset: 2000, Overscan: 10},
			wantLo:    30,
			wantHi:    59,
			wantTotal: 5000,
		},
		{
			name:      "offset not aligned to rows",
			p:         Params{Count: 100, RowHeight: 50, Viewport: 500, Offset: 2025, Overscan: 0},
			wantLo:    40,
			wantHi:    50,
			wantTotal: 5000,
		},
		{
			name:      "bottom clamps to last row",
			p:         Params{Count: 100, RowHeight: 50, Viewport: 500, Offset: 4500, Overscan: 10},
			wantLo:    80,
			wantHi:    99,
			wantTotal: 5000,
		},
		{
			name:      "fewer rows than viewport",
			p:         Params{Count: 3, RowHeight: 1, Viewport: 20, Offset: 0, Overscan: 10},
			wantLo:    0,
			wantHi:    2,
			wantTotal: 3,
		},
		{
			name:      "single line rows",
			p:         Params{Count: 1000, RowHeight: 1, Viewport: 20, Offset: 100, Overscan: 5},
			wantLo:    95,
			wantHi:    124,
			wantTotal: 1000,
		},
		{
			name:      "empty list",
			p:         Params{Count: 0, RowHeight: 1, Viewport: 20},
			wantLo:    0,
			wantHi:    -1,
			wantTotal: 0,
		},
		{
			name:      "zero viewport",
			p:         Params{Count: 10, RowHeight: 1, Viewport: 0},
			wantLo:    0,
			wantHi:    -1,
			wantTotal: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(tt.p)
			if w.Lo != tt.wantLo || w.Hi != tt.wantHi {
				t.Errorf("range = [%d,%d], want [%d,%d]", w.Lo, w.Hi, tt.wantLo, tt.wantHi)
			}
			if w.TotalSize != tt.wantTotal {
				t.Errorf("total = %d, want %d", w.TotalSize, tt.wantTotal)
			}
			if len(w.Items) != w.Len() {
				t.Errorf("items = %d, len = %d", len(w.Items), w.Len())
			}
			for _, it := range w.Items {
				if it.Start != it.Index*max(tt.p.RowHeight, 1) {
					t.Errorf("item %d start = %d", it.Index, it.Start)
				}
			}
		})
	}
}

func TestComputeCoversViewport(t *testing.T) {
	// Every row intersecting the padded viewport must be materialized, and no others.
	for offset := 0; offset < 300; offset += 7 {
		p := Params{Count: 40, RowHeight: 10, Viewport: 45, Offset: offset, Overscan: 2}
		w := Compute(p)
		top := offset - p.Overscan*p.RowHeight
		bottom := offset + p.Viewport + p.Overscan*p.RowHeight
		for i := 0; i < p.Count; i++ {
			start, end := i*p.RowHeight, (i+1)*p.RowHeight
			intersects := start < bottom && end > top
			if intersects != w.Contains(i) {
				t.Fatalf("offset %d row %d: intersects=%v contains=%v", offset, i, intersects, w.Contains(i))
			}
		}
	}
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		offset, total, viewport, want int
	}{
		{-5, 100, 20, 0},
		{50, 100, 20, 50},
		{95, 100, 20, 80},
		{10, 5, 20, 0},
	}
	for _, tt := range tests {
		if got := ClampOffset(tt.offset, tt.total, tt.viewport); got != tt.want {
			t.Errorf("ClampOffset(%d,%d,%d) = %d, want %d", tt.offset, tt.total, tt.viewport, got, tt.want)
		}
	}
}

func TestFirstVisible(t *testing.T) {
	if got := FirstVisible(125, 50); got != 2 {
		t.Errorf("FirstVisible = %d, want 2", got)
	}
	if got := FirstVisible(-3, 0); got != 0 {
		t.Errorf("FirstVisible = %d, want 0", got)
	}
}
