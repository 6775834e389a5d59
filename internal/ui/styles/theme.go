package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve  = lipgloss.Color("#c6a0f6")
	Red    = lipgloss.Color("#ed8796")
	Peach  = lipgloss.Color("#f5a97f")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Blue   = lipgloss.Color("#8aadf4")
)

// ModeColors maps popup modes to the accent used for their badge
var ModeColors = map[string]lipgloss.Color{
	"hover":   Blue,
	"tooltip": Green,
	"click":   Mauve,
	"focus":   Peach,
}
