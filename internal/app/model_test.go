package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/popup/internal/config"
	"github.com/riordanpawley/popup/internal/popup"
	"github.com/riordanpawley/popup/internal/ui/overlay"
	"github.com/riordanpawley/popup/internal/ui/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a sized test model with the default popups
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.MergeWithDefaults(config.DefaultConfig())
	m, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNew(t *testing.T) {
	m := newTestModel(t)

	assert.Len(t, m.popups, len(popupNames))
	assert.Equal(t, popup.ModeHover, m.byName["toolbar"].Mode())
	assert.Equal(t, popup.ModeTooltip, m.byName["rows"].Mode())
	assert.Equal(t, popup.ModeClick, m.byName["menu"].Mode())
	assert.Equal(t, popup.ModeFocus, m.byName["search"].Mode())
	assert.Equal(t, popup.ModeClick, m.byName["help"].Mode())
	assert.Equal(t, len(popupNames), m.stack.Len())
	assert.False(t, m.disabled)

	r, ok := m.zm.Rect(screenZone)
	require.True(t, ok)
	assert.Equal(t, zones.Rect{W: 80, H: 24}, r)
}

func TestNewDisabledFromConfig(t *testing.T) {
	cfg := config.MergeWithDefaults(config.DefaultConfig())
	for name, pc := range cfg.Popups {
		pc.Disabled = true
		cfg.Popups[name] = pc
	}

	m, err := New(cfg, nil)
	require.NoError(t, err)
	assert.True(t, m.disabled)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestToggleDisabled(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(m, keyPress("d"))
	assert.True(t, m.disabled)
	for _, p := range m.popups {
		assert.True(t, p.Disabled(), "popup %s", p.ID())
	}
	require.Len(t, m.toasts, 1)
	assert.Equal(t, "Popups disabled", m.toasts[0].Message)

	m.byName["help"].Show()
	assert.False(t, m.byName["help"].Visible(), "disabled popups do not show")

	m, _ = update(m, keyPress("d"))
	assert.False(t, m.disabled)
	for _, p := range m.popups {
		assert.False(t, p.Disabled(), "popup %s", p.ID())
	}
}

func TestHelpKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(m, keyPress("?"))
	assert.True(t, m.byName["help"].Visible())

	m, _ = update(m, keyPress("?"))
	assert.False(t, m.byName["help"].Visible())

	m, _ = update(m, keyPress("?"))
	m, _ = update(m, keyPress("esc"))
	assert.False(t, m.byName["help"].Visible(), "esc dismisses")
}

func TestFocusTyping(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(m, keyPress("tab"))
	assert.NotNil(t, cmd)
	assert.True(t, m.focused)
	assert.True(t, m.input.Focused())

	m, _ = update(m, keyPress("q"))
	assert.Equal(t, "q", m.input.Value(), "keys go to the input while focused")

	m, _ = update(m, keyPress("tab"))
	assert.False(t, m.focused)
	assert.False(t, m.input.Focused())
}

func TestFocusPopup(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(m, popup.FocusMsg{Target: searchZone})
	assert.True(t, m.byName["search"].Visible())
	assert.Equal(t, searchZone, m.byName["search"].Active())
}

func TestMouseFocus(t *testing.T) {
	m := newTestModel(t)
	m.zm.Place(searchZone, zones.Rect{X: 2, Y: 12, W: 24, H: 3})

	m, _ = update(m, leftPress(5, 13))
	assert.True(t, m.focused, "pressing the input focuses it")

	m, _ = update(m, leftPress(70, 2))
	assert.False(t, m.focused, "pressing elsewhere blurs it")
}

func TestSuggestions(t *testing.T) {
	m := newTestModel(t)

	assert.Len(t, m.suggest.Items(), maxSuggestions)

	m.input.SetValue("ho")
	m.refreshSuggestions()
	items := m.suggest.Items()
	require.NotEmpty(t, items)
	assert.Equal(t, "hover", items[0].Label)

	m.input.SetValue("zzz")
	m.refreshSuggestions()
	items = m.suggest.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "no matches", items[0].Label)
	assert.False(t, items[0].Enabled)
}

func TestSuggestionSelection(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(m, overlay.SelectionMsg{Menu: suggestID, Value: "delay"})
	assert.NotNil(t, cmd)
	assert.Equal(t, "delay", m.input.Value())
	assert.True(t, m.focused, "picking a suggestion refocuses the input")
}

func TestMenu(t *testing.T) {
	m := newTestModel(t)
	menu := m.byName["menu"]

	menu.Dispatch(popup.Event{Kind: popup.EventClick, Target: "btn-open"})
	require.True(t, menu.Visible())
	assert.Equal(t, "btn-open", menu.Owner())

	var labels []string
	for _, it := range m.menu.Items() {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Recent", "Browse", "URL"}, labels)

	_, cmd := update(m, keyPress("b"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, overlay.SelectionMsg{}, msg)

	m, _ = update(m, msg)
	assert.False(t, menu.Visible())
	assert.Empty(t, menu.Owner())
	require.Len(t, m.toasts, 1)
	assert.Equal(t, "Open Browse", m.toasts[0].Message)
}

func TestMenuSwitchesTrigger(t *testing.T) {
	m := newTestModel(t)
	menu := m.byName["menu"]

	menu.Dispatch(popup.Event{Kind: popup.EventClick, Target: "btn-open"})
	menu.Dispatch(popup.Event{Kind: popup.EventClick, Target: "btn-new"})

	assert.True(t, menu.Visible())
	assert.Equal(t, "btn-new", menu.Owner())
	assert.Equal(t, "File", m.menu.Items()[0].Label)
}

func TestBodies(t *testing.T) {
	m := newTestModel(t)

	m.byName["toolbar"].Dispatch(popup.Event{Kind: popup.EventMouseOver, Target: "btn-edit"})
	assert.Contains(t, m.toolbarBody(), "Edit moves")

	m.byName["rows"].Dispatch(popup.Event{Kind: popup.EventMouseOver, Target: "row-2"})
	assert.True(t, m.byName["rows"].Visible(), "tooltips show without delay")
	assert.Contains(t, ansi.Strip(m.layers["rows"].View()), "scheduler")

	m.byName["rows"].Dispatch(popup.Event{Kind: popup.EventMouseOut, Target: "row-2"})
	assert.False(t, m.byName["rows"].Visible())
	assert.Empty(t, ansi.Strip(m.layers["rows"].View()))
}

func TestViewHeight(t *testing.T) {
	m := newTestModel(t)

	t.Run("normal view", func(t *testing.T) {
		view := ansi.Strip(m.View())
		lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
		if len(lines) > m.height {
			t.Errorf("Normal view is too tall: got %d lines, want %d", len(lines), m.height)
		}
		for _, want := range []string{"popup demo", "Services", "scheduler", "no popup open"} {
			assert.Contains(t, view, want)
		}
	})

	t.Run("with popup and toast", func(t *testing.T) {
		m.byName["rows"].Dispatch(popup.Event{Kind: popup.EventMouseOver, Target: "row-0"})
		m, _ = update(m, keyPress("d"))

		view := ansi.Strip(m.View())
		lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
		if len(lines) > m.height {
			t.Errorf("View with popup is too tall: got %d lines, want %d", len(lines), m.height)
		}
		assert.Contains(t, view, "Popups disabled")
		assert.Contains(t, view, "DISABLED")
		assert.Contains(t, view, "p99 41ms")
	})

	t.Run("before the first size", func(t *testing.T) {
		fresh, err := New(config.MergeWithDefaults(config.DefaultConfig()), nil)
		require.NoError(t, err)
		assert.Equal(t, "Loading...", fresh.View())
	})
}
