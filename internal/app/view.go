package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/popup/internal/ui/overlay"
	"github.com/riordanpawley/popup/internal/ui/statusbar"
	"github.com/riordanpawley/popup/internal/ui/toast"
)

// View renders the screen, composites the visible popups over it and
// registers every zone for the next round of pointer events
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("popup demo"),
		m.renderToolbar(),
		"",
		m.styles.Section.Render("Services"),
		m.renderRows(),
		"",
		m.styles.Section.Render("Search"),
		m.renderSearch(),
	)
	body = m.styles.Screen.Render(body)

	bodyHeight := m.height - 1
	body = lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(bodyHeight).
		Render(body)
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)

	view := lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())

	if toasts := toast.Active(m.toasts, time.Now()); len(toasts) > 0 {
		tv := toast.New(m.styles).Render(toasts, m.width)
		w, h := lipgloss.Size(tv)
		view = overlay.Composite(view, tv, max(0, m.width-w), max(0, bodyHeight-h))
	}

	view = m.stack.Composite(view, m.zm, m.width, m.height)
	return m.zm.Scan(view)
}

func (m Model) renderToolbar() string {
	var parts []string
	for _, b := range toolbarButtons {
		parts = append(parts, m.renderButton(b), " ")
	}
	parts = append(parts, "  ")
	for _, b := range menuButtons {
		parts = append(parts, m.renderButton(b), " ")
	}
	parts = append(parts, "  ", m.renderButton(button{id: helpButton, label: "?"}))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderButton(b button) string {
	style := m.styles.Button

	toolbar := m.byName["toolbar"]
	switch {
	case m.byName["menu"].Owner() == b.id:
		style = m.styles.ButtonOpen
	case b.id == helpButton && m.byName["help"].Visible():
		style = m.styles.ButtonOpen
	case toolbar.Visible() && toolbar.Active() == b.id:
		style = m.styles.ButtonHovered
	}
	return m.zm.Mark(b.id, style.Render(b.label))
}

func (m Model) renderRows() string {
	rowsPopup := m.byName["rows"]

	lines := make([]string, 0, len(services))
	for i, s := range services {
		id := fmt.Sprintf("row-%d", i)
		style := m.styles.Row
		if rowsPopup.Visible() && rowsPopup.Active() == id {
			style = m.styles.RowHovered
		}
		lines = append(lines, m.zm.Mark(id, style.Render(fmt.Sprintf("%-10s %s", s.name, s.status))))
	}
	return m.zm.Mark(rowsZone, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderSearch() string {
	style := m.styles.Input
	if m.focused {
		style = m.styles.InputFocused
	}
	return m.zm.Mark(searchZone, style.Render(m.input.View()))
}

func (m Model) renderStatusBar() string {
	var open []statusbar.Entry
	for _, p := range m.popups {
		if p.Visible() {
			open = append(open, statusbar.Entry{Name: p.ID(), Mode: string(p.Mode())})
		}
	}
	return statusbar.New(open, m.disabled, m.width, m.styles).
		WithHints(statusbar.Hints(m.keys.ShortHelp(), m.styles)).
		Render()
}
