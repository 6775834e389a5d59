package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Marker wraps rendered text in a zone. *zones.Manager satisfies it.
type Marker interface {
	Mark(id, s string) string
}

// SelectionMsg is sent when a menu item is picked
type SelectionMsg struct {
	Menu  string
	Key   string
	Value any
}

// Item represents a menu entry
type Item struct {
	Key     string
	Label   string
	Value   any
	Enabled bool
}

// Menu is a body listing selectable items. Each enabled item is marked as a
// zone so it can be picked with the mouse.
type Menu struct {
	id     string
	items  []Item
	cursor int
	marker Marker
	styles *Styles
}

// NewMenu creates a menu; item zone ids are derived from id
func NewMenu(id string, marker Marker, items ...Item) *Menu {
	return &Menu{
		id:     id,
		items:  items,
		marker: marker,
		styles: New(),
	}
}

// SetItems replaces the items and resets the cursor
func (m *Menu) SetItems(items []Item) {
	m.items = items
	m.cursor = 0
}

// Items returns the menu items
func (m *Menu) Items() []Item {
	return m.items
}

// Cursor returns the highlighted index
func (m *Menu) Cursor() int {
	return m.cursor
}

// ItemZone returns the zone id of item i
func (m *Menu) ItemZone(i int) string {
	return fmt.Sprintf("%s-item-%d", m.id, i)
}

// ItemAt returns the index of the item whose zone is in hits, or -1
func (m *Menu) ItemAt(hits []string) int {
	prefix := m.id + "-item-"
	for _, h := range hits {
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		var i int
		if _, err := fmt.Sscanf(h[len(prefix):], "%d", &i); err == nil && i >= 0 && i < len(m.items) {
			return i
		}
	}
	return -1
}

// Hover highlights item i if it is enabled
func (m *Menu) Hover(i int) {
	if i >= 0 && i < len(m.items) && m.items[i].Enabled {
		m.cursor = i
	}
}

// Select returns a command emitting the selection of item i
func (m *Menu) Select(i int) tea.Cmd {
	if i < 0 || i >= len(m.items) || !m.items[i].Enabled {
		return nil
	}
	item := m.items[i]
	return func() tea.Msg {
		return SelectionMsg{Menu: m.id, Key: item.Key, Value: item.Value}
	}
}

// Update handles keyboard navigation
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "enter":
		return m.Select(m.cursor)
	default:
		for i, it := range m.items {
			if it.Enabled && it.Key != "" && it.Key == key.String() {
				return m.Select(i)
			}
		}
	}
	return nil
}

func (m *Menu) move(delta int) {
	n := len(m.items)
	for step := 1; step <= n; step++ {
		i := ((m.cursor+delta*step)%n + n) % n
		if m.items[i].Enabled {
			m.cursor = i
			return
		}
	}
}

// View renders the items
func (m *Menu) View() string {
	var b strings.Builder
	for i, it := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		line := it.Label
		if it.Key != "" {
			line = fmt.Sprintf("[%s] %s", it.Key, it.Label)
		}

		switch {
		case !it.Enabled:
			b.WriteString(m.styles.Hint.Render(line))
		case i == m.cursor:
			b.WriteString(m.mark(i, m.styles.ItemActive.Render(line)))
		default:
			b.WriteString(m.mark(i, m.styles.Item.Render(line)))
		}
	}
	return b.String()
}

func (m *Menu) mark(i int, s string) string {
	if m.marker == nil {
		return s
	}
	return m.marker.Mark(m.ItemZone(i), s)
}
