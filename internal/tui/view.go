package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/pagetable/internal/pager"
	"github.com/javiermolinar/pagetable/internal/tui/view"
	"github.com/javiermolinar/pagetable/internal/user"
)

const helpText = "↑/↓ move · pgup/pgdn page · g/G ends · enter details · y copy email · r retry · q quit"

// View renders the table, the footer and, when open, the detail modal.
func (m Model) View() string {
	base := m.renderAppContent()
	modal := ""
	if m.showDetail {
		modal = m.renderDetail()
	}
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        m.showDetail,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	tableBox := view.RenderTable(m.tableViewState())
	footerBox := view.RenderFooter(m.footerViewState())

	content := lipgloss.JoinVertical(lipgloss.Left, tableBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) tableViewState() view.TableViewState {
	rows, skip := m.materialize(m.window())
	return view.TableViewState{
		InnerW:      m.layout.InnerW,
		GridH:       m.layout.GridH,
		Headers:     user.Headers,
		Weights:     columnWeights,
		Rows:        rows,
		SkipLines:   skip,
		RowHeight:   m.rowHeight,
		Selected:    m.cursor,
		Scroll:      view.Scrollbar{Total: m.totalLines(), Viewport: m.layout.BodyH, Offset: m.offset},
		Placeholder: m.placeholder(),
		Styles:      m.styles.tableStyles(),
		Render:      true,
	}
}

func (m Model) placeholder() string {
	if len(m.state.Records) > 0 {
		return ""
	}
	switch {
	case m.busy():
		return "Loading users..."
	case m.state.Err != "":
		return "Could not load users"
	case !m.state.HasMore:
		return "No users found"
	}
	return ""
}

func (m Model) footerViewState() view.FooterViewState {
	status, style := m.statusText()
	return view.FooterViewState{
		InnerW:      m.layout.InnerW,
		FooterH:     m.layout.FooterH,
		StatusText:  status,
		InfoText:    m.infoText(),
		HelpText:    helpText,
		StatusStyle: style,
		InfoStyle:   m.layout.InfoStyle,
		HelpStyle:   m.layout.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

// statusText picks the most relevant status: an in-flight load, then a
// fetch error, then a transient message, then the exhausted notice.
func (m Model) statusText() (string, lipgloss.Style) {
	switch {
	case m.busy():
		return fmt.Sprintf("%s Loading page %d...", m.spinner.View(), m.state.NextPage), m.layout.StatusStyle
	case m.state.Err != "":
		return "⚠ " + m.state.Err + " (r to retry)", m.styles.ErrorStyle
	case m.statusMsg != "":
		return m.statusMsg, m.layout.StatusStyle
	case m.state.Phase() == pager.PhaseExhausted:
		return "All users loaded", m.layout.StatusStyle
	}
	return "", m.layout.StatusStyle
}

func (m Model) infoText() string {
	n := len(m.state.Records)
	if n == 0 {
		return ""
	}
	more := ""
	if m.state.HasMore {
		more = "+"
	}
	info := fmt.Sprintf("%d/%d%s", m.cursor+1, n, more)
	if invalid := m.issues.count(); invalid > 0 {
		info = fmt.Sprintf("%d invalid · %s", invalid, info)
	}
	return info
}

func (m Model) selected() (user.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Records) {
		return user.Record{}, false
	}
	return m.state.Records[m.cursor], true
}

func (m Model) renderDetail() string {
	rec, ok := m.selected()
	if !ok {
		return ""
	}
	phone := user.DisplayPhone(rec)
	if raw := rec.Phone.String(); rec.Phone.IsSet() && raw != phone {
		phone = fmt.Sprintf("%s (%s)", phone, raw)
	}

	return view.RenderDetailModal(view.DetailModal{
		Title: fmt.Sprintf("User %d of %d", m.cursor+1, len(m.state.Records)),
		Fields: []view.Field{
			{Label: "Name", Value: rec.Name.Display("N/A")},
			{Label: "Email", Value: rec.Email.Display("N/A")},
			{Label: "Phone", Value: phone},
			{Label: "Company", Value: rec.Company.Name.Display("Unknown Company")},
			{Label: "City", Value: rec.Address.City.Display("Unknown City")},
		},
		Warnings:     m.issues.get(m.cursor),
		Hint:         "esc close · y copy email",
		MaxW:         min(max(m.layout.InnerW-8, 30), 72),
		BoxStyle:     m.styles.ModalStyle,
		TitleStyle:   m.styles.ModalTitleStyle,
		LabelStyle:   m.styles.ModalLabelStyle,
		ValueStyle:   m.styles.ModalValueStyle,
		WarningStyle: m.styles.ModalWarningStyle,
		HintStyle:    m.styles.ModalHintStyle,
	})
}
