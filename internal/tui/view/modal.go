package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line of the detail modal.
type Field struct {
	Label string
	Value string
}

// DetailModal describes the record detail popup.
type DetailModal struct {
	Title    string
	Fields   []Field
	Warnings []string
	Hint     string
	MaxW     int

	BoxStyle     lipgloss.Style
	TitleStyle   lipgloss.Style
	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	HintStyle    lipgloss.Style
}

// RenderDetailModal renders a bordered box listing the fields of a record.
func RenderDetailModal(m DetailModal) string {
	labelW := 0
	for _, f := range m.Fields {
		labelW = max(labelW, lipgloss.Width(f.Label))
	}

	frameW, _ := m.BoxStyle.GetFrameSize()
	innerW := max(m.MaxW-frameW, 10)

	var lines []string
	lines = append(lines, m.TitleStyle.Render(Fit(m.Title, innerW)), "")
	for _, f := range m.Fields {
		label := m.LabelStyle.Render(Fit(f.Label, labelW))
		value := m.ValueStyle.Render(Fit(f.Value, max(innerW-labelW-2, 1)))
		lines = append(lines, label+"  "+value)
	}
	if len(m.Warnings) > 0 {
		lines = append(lines, "")
		for _, w := range m.Warnings {
			lines = append(lines, m.WarningStyle.Render(Fit(warningIcon+" "+w, innerW)))
		}
	}
	if m.Hint != "" {
		lines = append(lines, "", m.HintStyle.Render(Fit(m.Hint, innerW)))
	}

	return m.BoxStyle.Render(strings.Join(lines, "\n"))
}
