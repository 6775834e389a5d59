package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/popup/internal/ui/styles"
)

// Entry describes one open popup
type Entry struct {
	Name string
	Mode string
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	open     []Entry
	disabled bool
	hints    string
	width    int
	styles   *styles.Styles
}

// New creates a new StatusBar listing the open popups
func New(open []Entry, disabled bool, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		open:     open,
		disabled: disabled,
		width:    width,
		styles:   styles,
	}
}

// WithHints returns a copy of the status bar showing hints on the right
func (sb StatusBar) WithHints(hints string) StatusBar {
	sb.hints = hints
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	var parts []string

	if sb.disabled {
		parts = append(parts, sb.styles.Disabled.Render("DISABLED"))
	}

	if len(sb.open) == 0 {
		parts = append(parts, sb.styles.StatusHint.Render("no popup open"))
	}
	for _, e := range sb.open {
		parts = append(parts, sb.styles.ModeBadge(e.Mode).Render(e.Name))
	}

	content := strings.Join(parts, " ")
	if sb.hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, separator, sb.hints)
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}
