package popup

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Gate is the single place show and hide requests reach the surface.
// Disabling blocks future shows but never hides a visible popup.
type Gate struct {
	surface  Surface
	disabled bool
	logger   *slog.Logger
}

// NewGate creates a gate in front of surface
func NewGate(surface Surface, disabled bool, logger *slog.Logger) *Gate {
	return &Gate{surface: surface, disabled: disabled, logger: logger}
}

// Show makes the surface visible unless the gate is disabled
func (g *Gate) Show() tea.Cmd {
	if g.disabled {
		g.logger.Debug("show suppressed", "reason", "disabled")
		return nil
	}
	return g.surface.Show()
}

// Hide always reaches the surface
func (g *Gate) Hide() tea.Cmd {
	return g.surface.Hide()
}

// Visible reports the surface's visibility
func (g *Gate) Visible() bool {
	return g.surface.Visible()
}

// SetDisabled toggles the disabled flag
func (g *Gate) SetDisabled(disabled bool) {
	g.disabled = disabled
}

// Disabled reports the disabled flag
func (g *Gate) Disabled() bool {
	return g.disabled
}
