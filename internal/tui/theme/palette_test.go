package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_DarkStripeIsLighter(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#ffcc00",
		Error:       "#ff0000",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.Stripe)) <= relativeLuminance(base.Bg) {
		t.Fatalf("Stripe %q should be lighter than bg %q", palette.Stripe, base.Bg)
	}
	if palette.WarningBg != lipgloss.Color(blendColors(base.Warning, base.Bg, 0.80)) {
		t.Fatalf("WarningBg = %q, want blend of warning and bg", palette.WarningBg)
	}
	if palette.TextOnSelection != lipgloss.Color(base.Fg) {
		t.Fatalf("TextOnSelection = %q, want %q", palette.TextOnSelection, base.Fg)
	}
}

func TestNewPalette_LightStripeIsDarker(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Warning:     "#c2410c",
		Error:       "#d20f39",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.Stripe)) >= relativeLuminance(base.Bg) {
		t.Fatalf("Stripe %q should be darker than bg %q", palette.Stripe, base.Bg)
	}
}

func TestNewPalette_NilFallsBackToMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Fatalf("Bg = %q, want mocha background", palette.Bg)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 2, "#ffffff"},
		{"#204060", "#204060", 0.5, "#204060"},
		{"bogus", "#ffffff", 0.5, "bogus"},
	}
	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
