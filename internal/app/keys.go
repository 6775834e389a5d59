package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global key bindings
type keyMap struct {
	Focus     key.Binding
	Disable   key.Binding
	Help      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus search"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle disabled"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Disable, k.Help, k.Quit}
}
