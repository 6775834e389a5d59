package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the styles of the demo screen
type Styles struct {
	// Layout
	Screen  lipgloss.Style
	Header  lipgloss.Style
	Section lipgloss.Style

	// Triggers
	Button        lipgloss.Style
	ButtonHovered lipgloss.Style
	ButtonOpen    lipgloss.Style
	Row           lipgloss.Style
	RowHovered    lipgloss.Style

	// Inputs
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style
	Disabled   lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// ModeBadge renders a small label for a popup mode
	ModeBadge func(mode string) lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	button := lipgloss.NewStyle().
		Foreground(Text).
		Background(Surface0).
		Padding(0, 1)

	row := lipgloss.NewStyle().
		Foreground(Subtext1).
		Padding(0, 1)

	input := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)

	toast := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		Screen: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		Button: button,

		ButtonHovered: button.
			Background(Surface1),

		ButtonOpen: button.
			Foreground(Base).
			Background(Mauve),

		Row: row,

		RowHovered: row.
			Foreground(Text).
			Background(Surface0),

		Input: input,

		InputFocused: input.
			BorderForeground(Peach),

		StatusBar: lipgloss.NewStyle().
			Foreground(Subtext1).
			Background(Mantle).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Green),

		Disabled: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		ToastInfo: toast.
			BorderForeground(Blue).
			Foreground(Text),

		ToastSuccess: toast.
			BorderForeground(Green).
			Foreground(Green),

		ToastWarning: toast.
			BorderForeground(Yellow).
			Foreground(Yellow),

		ToastError: toast.
			BorderForeground(Red).
			Foreground(Red),

		ModeBadge: func(mode string) lipgloss.Style {
			c, ok := ModeColors[mode]
			if !ok {
				c = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(c).
				Padding(0, 1)
		},
	}
}
