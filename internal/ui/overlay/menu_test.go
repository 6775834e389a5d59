package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu(marker Marker) *Menu {
	return NewMenu("actions", marker,
		Item{Key: "o", Label: "Open", Value: 1, Enabled: true},
		Item{Key: "r", Label: "Rename", Value: 2, Enabled: false},
		Item{Key: "d", Label: "Delete", Value: 3, Enabled: true},
	)
}

func TestMenuView(t *testing.T) {
	marker := &fakeMarker{}
	m := testMenu(marker)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "[o] Open")
	assert.Contains(t, view, "[r] Rename")
	assert.Contains(t, view, "[d] Delete")
	assert.Equal(t, []string{"actions-item-0", "actions-item-2"}, marker.ids, "disabled items are not marked")
}

func TestMenuNavigation(t *testing.T) {
	m := testMenu(nil)
	assert.Equal(t, 0, m.Cursor())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.Cursor(), "disabled items are skipped")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Cursor(), "wraps around")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.Cursor())
}

func TestMenuSelect(t *testing.T) {
	m := testMenu(nil)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectionMsg{Menu: "actions", Key: "o", Value: 1}, cmd())

	cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectionMsg{Menu: "actions", Key: "d", Value: 3}, cmd())

	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}), "disabled shortcut")
	assert.Nil(t, m.Select(5))
}

func TestMenuMouse(t *testing.T) {
	m := testMenu(nil)

	assert.Equal(t, 2, m.ItemAt([]string{"actions", "actions-item-2"}))
	assert.Equal(t, -1, m.ItemAt([]string{"actions"}))
	assert.Equal(t, -1, m.ItemAt([]string{"actions-item-9"}))

	m.Hover(1)
	assert.Equal(t, 0, m.Cursor(), "disabled items cannot be hovered")
	m.Hover(2)
	assert.Equal(t, 2, m.Cursor())

	m.SetItems([]Item{{Label: "Only", Enabled: true}})
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "Only", ansi.Strip(m.View()))
}
