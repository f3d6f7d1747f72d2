package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color

	// Stripe is a subtle shade for odd rows.
	Stripe lipgloss.Color
	// WarningBg sits behind warning blocks so they read as part of their row.
	WarningBg lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnSelection lipgloss.Color
	TextOnWarning   lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	isLight := IsLight(t.Bg)
	warningBg := blendColors(t.Warning, t.Bg, 0.85)
	if !isLight {
		warningBg = blendColors(t.Warning, t.Bg, 0.80)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Warning:     lipgloss.Color(t.Warning),
		Error:       lipgloss.Color(t.Error),

		Stripe:    lipgloss.Color(alternateShade(t.Bg, isLight)),
		WarningBg: lipgloss.Color(warningBg),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),
		TextOnWarning:   lipgloss.Color(chooseTextColor(warningBg, t.Bg, t.Fg)),
	}
}

// IsLight reports whether a background color is light.
func IsLight(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// alternateShade nudges a background towards its opposite for row striping.
func alternateShade(hex string, isLight bool) string {
	if !validHex(hex) {
		return hex
	}
	if isLight {
		return blendColors(hex, "#000000", 0.04)
	}
	return blendColors(hex, "#ffffff", 0.05)
}

func validHex(hex string) bool {
	return len(hex) == 7 && hex[0] == '#'
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string) int {
	val := 0
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func rgb(hex string) (r, g, b int) {
	return parseHex(hex[1:3]), parseHex(hex[3:5]), parseHex(hex[5:7])
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	if !validHex(hex) {
		return 0
	}
	r, g, b := rgb(hex)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes a towards b; ratio 0 keeps a, 1 yields b.
func blendColors(a, b string, ratio float64) string {
	if !validHex(a) || !validHex(b) {
		return a
	}
	ratio = min(max(ratio, 0), 1)

	ar, ag, ab := rgb(a)
	br, bg, bb := rgb(b)
	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return formatHexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
