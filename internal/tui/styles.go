// Package tui provides the terminal user interface for pagetable.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/pagetable/internal/tui/theme"
	"github.com/javiermolinar/pagetable/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	// App container
	AppStyle lipgloss.Style

	// Table
	HeaderStyle      lipgloss.Style
	RowStyle         lipgloss.Style
	RowAltStyle      lipgloss.Style
	SelectedStyle    lipgloss.Style
	WarningStyle     lipgloss.Style
	TrackStyle       lipgloss.Style
	ThumbStyle       lipgloss.Style
	PlaceholderStyle lipgloss.Style
	BlankStyle       lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	InfoStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
	SpinnerStyle lipgloss.Style

	// Detail modal
	ModalStyle        lipgloss.Style
	ModalBgColor      lipgloss.Color
	ModalTitleStyle   lipgloss.Style
	ModalLabelStyle   lipgloss.Style
	ModalValueStyle   lipgloss.Style
	ModalWarningStyle lipgloss.Style
	ModalHintStyle    lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.BgHighlight)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	// Odd rows get a slightly different shade so long tables stay readable
	s.RowAltStyle = s.RowStyle.
		Background(palette.Stripe)

	s.SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnSelection).
		Background(palette.BgSelection)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.WarningBg)

	s.TrackStyle = lipgloss.NewStyle().
		Foreground(palette.BgHighlight).
		Background(palette.Bg)

	s.ThumbStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.BlankStyle = lipgloss.NewStyle().
		Background(palette.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.InfoStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Error).
		Background(palette.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.ModalBgColor = palette.BgHighlight
	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Accent).
		BorderBackground(palette.BgHighlight).
		Background(palette.BgHighlight).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.BgHighlight)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.BgHighlight)

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgHighlight)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.BgHighlight)

	s.ModalHintStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(palette.FgMuted).
		Background(palette.BgHighlight)

	return s
}

func (s *Styles) tableStyles() view.TableStyles {
	return view.TableStyles{
		Header:      s.HeaderStyle,
		Row:         s.RowStyle,
		RowAlt:      s.RowAltStyle,
		Selected:    s.SelectedStyle,
		Warning:     s.WarningStyle,
		Track:       s.TrackStyle,
		Thumb:       s.ThumbStyle,
		Placeholder: s.PlaceholderStyle,
		Blank:       s.BlankStyle,
	}
}
