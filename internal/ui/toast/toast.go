// Package toast renders short-lived notifications in a corner of the screen.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/popup/internal/ui/styles"
)

// Toast represents a notification message
type Toast struct {
	Level   Level
	Message string
	Expires time.Time
}

// Level indicates the severity of a toast
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Active returns the toasts that have not expired at now
func Active(toasts []Toast, now time.Time) []Toast {
	filtered := make([]Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.Expires.After(now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders a stack of toasts, right aligned.
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40 // Cap maximum toast width
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	// Stack toasts vertically, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case Success:
		return r.styles.ToastSuccess
	case Warning:
		return r.styles.ToastWarning
	case Error:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
