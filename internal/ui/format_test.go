package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFitCell(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pads short text", in: "Ada", width: 6, want: "Ada   "},
		{name: "exact width", in: "Grace", width: 5, want: "Grace"},
		{name: "truncates with ellipsis", in: "Margaret Hamilton", width: 8, want: "Margare…"},
		{name: "zero width", in: "Ada", width: 0, want: ""},
		{name: "wide runes", in: "東京都庁舎", width: 6, want: "東京… "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitCell(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("fitCell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w != max(tt.width, 0) {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestLayoutFillsWidth(t *testing.T) {
	for _, width := range []int{40, 80, 120, 200} {
		indexW, widths := layout(1000, width)
		if indexW != 4 {
			t.Errorf("indexW = %d, want 4", indexW)
		}
		sum := 2 + indexW + cellGap
		for _, w := range widths {
			sum += w
		}
		sum += cellGap * (len(widths) - 1)
		if sum != width {
			t.Errorf("layout(1000, %d) covers %d columns", width, sum)
		}
	}
}

func TestPrintOptsRowWidth(t *testing.T) {
	if got := (PrintOpts{Width: 10}).rowWidth(); got != minRowWidth {
		t.Errorf("rowWidth = %d, want %d", got, minRowWidth)
	}
	if got := (PrintOpts{Width: 132}).rowWidth(); got != 132 {
		t.Errorf("rowWidth = %d, want 132", got)
	}
}

func TestPrintStats(t *testing.T) {
	DisableColor()

	tests := []struct {
		name  string
		stats Stats
		want  string
	}{
		{name: "empty page", stats: Stats{Total: 7}, want: "0 of 7 users\n"},
		{name: "all valid", stats: Stats{From: 11, To: 20, Total: 120}, want: "11-20 of 120 users\n"},
		{name: "with invalid", stats: Stats{From: 1, To: 50, Total: 120, Invalid: 3}, want: "1-50 of 120 users | 3 invalid\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintStats(&buf, tt.stats)
			if buf.String() != tt.want {
				t.Errorf("PrintStats = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintHeaderAlignsWithRows(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintHeader(&buf, 3, PrintOpts{Width: 80})
	header := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(header, "     Name") {
		t.Errorf("header = %q, want name column after marker and index", header)
	}
}
