// Package app contains the demo application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/popup/internal/config"
	"github.com/riordanpawley/popup/internal/popup"
	"github.com/riordanpawley/popup/internal/ui/overlay"
	"github.com/riordanpawley/popup/internal/ui/styles"
	"github.com/riordanpawley/popup/internal/ui/toast"
	"github.com/riordanpawley/popup/internal/ui/zones"
	"github.com/sahilm/fuzzy"
)

// toastTTL is how long a toast stays on screen
const toastTTL = 3 * time.Second

type toastExpiredMsg struct{}

// Model is the main application state
type Model struct {
	// Popups, in update order, and their layers by popup name
	popups []*popup.Popup
	byName map[string]*popup.Popup
	layers map[string]*overlay.Layer
	stack  *overlay.Stack
	zm     *zones.Manager

	// Menu bodies
	menu    *overlay.Menu
	suggest *overlay.Menu

	// Search input
	input   textinput.Model
	focused bool

	disabled bool
	toasts   []toast.Toast
	keys     keyMap

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates the demo model with a popup for every demo section
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "search…"
	input.Prompt = "/ "
	input.Width = 20

	zm := zones.New()
	m := Model{
		byName: make(map[string]*popup.Popup),
		layers: make(map[string]*overlay.Layer),
		stack:  overlay.NewStack(),
		zm:     zm,
		menu:   overlay.NewMenu(menuID, zm),
		input:  input,
		keys:   defaultKeyMap(),
		styles: styles.New(),
		config: cfg,
		logger: logger,
	}
	m.suggest = overlay.NewMenu(suggestID, zm)

	help, err := overlay.NewMarkdown("Help", helpText, popupWidths["help"])
	if err != nil {
		return Model{}, fmt.Errorf("render help: %w", err)
	}

	bodies := map[string]overlay.Body{
		"toolbar": overlay.BodyFunc(m.toolbarBody),
		"rows":    overlay.BodyFunc(m.rowBody),
		"menu":    m.menu,
		"search":  m.suggest,
		"help":    help,
	}

	m.disabled = true
	for _, name := range popupNames {
		pc, err := cfg.Popup(name, logger)
		if err != nil {
			return Model{}, err
		}

		layer := overlay.NewLayer("popup-"+name, bodies[name])
		layer.SetWidth(popupWidths[name])
		p := popup.New(pc, layer, zm, logger)
		layer.SetAligner(p.Align)
		layer.AfterShow(func() { m.stack.Raise(layer) })
		m.stack.Push(layer)

		m.popups = append(m.popups, p)
		m.byName[name] = p
		m.layers[name] = layer
		m.disabled = m.disabled && p.Disabled()
	}

	m.layers["menu"].AfterShow(m.fillMenu)
	m.refreshSuggestions()

	for name := range cfg.Popups {
		if _, ok := m.byName[name]; !ok {
			logger.Debug("configured popup has no place in the demo", "name", name)
		}
	}
	return m, nil
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.zm.Place(screenZone, zones.Rect{W: msg.Width, H: msg.Height})

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.focused && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case overlay.SelectionMsg:
		cmds = append(cmds, m.handleSelection(msg))

	case toastExpiredMsg:
		m.toasts = toast.Active(m.toasts, time.Now())
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	for _, p := range m.popups {
		cmds = append(cmds, p.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Focus) {
		if m.focused {
			return m.blur()
		}
		return m.focus()
	}

	if m.focused {
		if m.byName["search"].Visible() && key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Select) {
			return m.suggest.Update(msg)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refreshSuggestions()
		return cmd
	}

	if m.byName["menu"].Visible() {
		if cmd := m.menu.Update(msg); cmd != nil {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Disable):
		return m.toggleDisabled()
	case key.Matches(msg, m.keys.Help):
		help := m.byName["help"]
		if help.Visible() {
			return help.Hide()
		}
		return help.Show()
	}
	return nil
}

// handleMouse routes presses and motion to the menu bodies and moves focus
// the way a pointer does: pressing the input focuses it, pressing anywhere
// else blurs it.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	hits := m.zm.Hits(msg)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.byName["menu"].Visible() {
			m.menu.Hover(m.menu.ItemAt(hits))
		}
		if m.byName["search"].Visible() {
			m.suggest.Hover(m.suggest.ItemAt(hits))
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.byName["menu"].Visible() {
			cmds = append(cmds, m.menu.Select(m.menu.ItemAt(hits)))
		}
		if m.byName["search"].Visible() {
			cmds = append(cmds, m.suggest.Select(m.suggest.ItemAt(hits)))
		}

		onInput := m.zm.InBounds(searchZone, msg)
		switch {
		case onInput && !m.focused:
			cmds = append(cmds, m.focus())
		case !onInput && m.focused:
			cmds = append(cmds, m.blur())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSelection(msg overlay.SelectionMsg) tea.Cmd {
	switch msg.Menu {
	case menuID:
		owner := m.byName["menu"].Owner()
		label, _ := msg.Value.(string)
		m.logger.Info("menu item selected", "trigger", owner, "item", label)
		return tea.Batch(
			m.addToast(toast.Toast{
				Level:   toast.Success,
				Message: fmt.Sprintf("%s %s", strings.TrimSuffix(buttonLabel(owner), " ▾"), label),
				Expires: time.Now().Add(toastTTL),
			}),
			m.byName["menu"].Hide(),
		)

	case suggestID:
		word, _ := msg.Value.(string)
		m.input.SetValue(word)
		m.input.CursorEnd()
		m.refreshSuggestions()
		if !m.focused {
			return m.focus()
		}
	}
	return nil
}

func (m *Model) focus() tea.Cmd {
	m.focused = true
	return tea.Batch(m.input.Focus(), emit(popup.FocusMsg{Target: searchZone}))
}

func (m *Model) blur() tea.Cmd {
	m.focused = false
	m.input.Blur()
	return emit(popup.BlurMsg{Target: searchZone})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func (m *Model) toggleDisabled() tea.Cmd {
	m.disabled = !m.disabled
	for _, p := range m.popups {
		p.SetDisabled(m.disabled)
	}

	msg := "Popups enabled"
	level := toast.Info
	if m.disabled {
		msg = "Popups disabled"
		level = toast.Warning
	}
	m.logger.Info("toggled disabled", "disabled", m.disabled)
	return m.addToast(toast.Toast{Level: level, Message: msg, Expires: time.Now().Add(toastTTL)})
}

func (m *Model) addToast(t toast.Toast) tea.Cmd {
	m.toasts = append(m.toasts, t)
	return tea.Tick(time.Until(t.Expires), func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// fillMenu swaps the menu items for the trigger that opened it
func (m Model) fillMenu() {
	active := m.byName["menu"].Active()
	entries := menuEntries[active]

	items := make([]overlay.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, overlay.Item{Key: e.key, Label: e.label, Value: e.label, Enabled: true})
	}
	m.menu.SetItems(items)
}

// refreshSuggestions filters the suggestion list by the input value
func (m Model) refreshSuggestions() {
	query := m.input.Value()

	var words []string
	if query == "" {
		words = suggestions
	} else {
		for _, match := range fuzzy.Find(query, suggestions) {
			words = append(words, match.Str)
		}
	}

	items := make([]overlay.Item, 0, maxSuggestions)
	for _, w := range words[:min(len(words), maxSuggestions)] {
		items = append(items, overlay.Item{Label: w, Value: w, Enabled: true})
	}
	if len(items) == 0 {
		items = append(items, overlay.Item{Label: "no matches"})
	}
	m.suggest.SetItems(items)
}

func (m Model) toolbarBody() string {
	active := m.byName["toolbar"].Active()
	for _, b := range toolbarButtons {
		if b.id == active {
			return b.about
		}
	}
	return ""
}

func (m Model) rowBody() string {
	active := m.byName["rows"].Active()
	var i int
	if _, err := fmt.Sscanf(active, "row-%d", &i); err != nil || i < 0 || i >= len(services) {
		return ""
	}
	s := services[i]
	return fmt.Sprintf("%s · %s\n%s", s.name, s.status, s.detail)
}

func buttonLabel(id string) string {
	for _, b := range menuButtons {
		if b.id == id {
			return b.label
		}
	}
	return id
}
