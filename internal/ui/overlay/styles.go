package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/popup/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Popup is the floating box around a layer's body
	Popup lipgloss.Style
	// Title is the optional first line of a popup
	Title lipgloss.Style
	// Item is the default menu item style
	Item lipgloss.Style
	// ItemActive is the hovered/selected menu item style
	ItemActive lipgloss.Style
	// Hint is the style for dim helper text
	Hint lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Popup: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Foreground(styles.Text).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(styles.Subtext0),
	}
}
