// Package zones tracks where marked regions were rendered so mouse messages
// can be matched against them. Marked regions are located by bubblezone when
// the frame is scanned; placed regions (overlay layers) are registered with
// their exact rectangle.
package zones

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Manager wraps a bubblezone manager and remembers which ids were marked so
// they can be enumerated and cleared once they stop being rendered.
type Manager struct {
	mu     sync.Mutex
	zm     *zone.Manager
	frame  []string
	live   []string
	placed []placement
}

type placement struct {
	id   string
	rect Rect
}

// New creates a Manager
func New() *Manager {
	return &Manager{zm: zone.New()}
}

// Mark wraps s in zone markers for id
func (m *Manager) Mark(id, s string) string {
	m.mu.Lock()
	m.frame = append(m.frame, id)
	m.mu.Unlock()
	return m.zm.Mark(id, s)
}

// Scan strips the markers from a rendered frame and records zone positions.
// Ids marked in the previous frame but not this one are forgotten.
func (m *Manager) Scan(s string) string {
	m.mu.Lock()
	seen := make(map[string]bool, len(m.frame))
	for _, id := range m.frame {
		seen[id] = true
	}
	for _, id := range m.live {
		if !seen[id] {
			m.zm.Clear(id)
		}
	}
	m.live = dedupe(m.frame)
	m.frame = nil
	m.mu.Unlock()

	return m.zm.Scan(s)
}

// Place registers id at an exact rectangle, replacing any earlier placement.
// Placed regions sit above marked ones, later placements above earlier.
func (m *Manager) Place(id string, r Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
	m.placed = append(m.placed, placement{id: id, rect: r})
}

// Remove drops a placed region
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
}

func (m *Manager) removeLocked(id string) {
	for i, p := range m.placed {
		if p.id == id {
			m.placed = append(m.placed[:i], m.placed[i+1:]...)
			return
		}
	}
}

// Rect returns where id was last rendered
func (m *Manager) Rect(id string) (Rect, bool) {
	m.mu.Lock()
	for _, p := range m.placed {
		if p.id == id {
			m.mu.Unlock()
			return p.rect, true
		}
	}
	m.mu.Unlock()

	z := m.zm.Get(id)
	if z == nil || z.IsZero() {
		return Rect{}, false
	}
	return Rect{
		X: z.StartX,
		Y: z.StartY,
		W: z.EndX - z.StartX + 1,
		H: z.EndY - z.StartY + 1,
	}, true
}

// InBounds reports whether the mouse message falls inside id
func (m *Manager) InBounds(id string, msg tea.MouseMsg) bool {
	m.mu.Lock()
	for _, p := range m.placed {
		if p.id == id {
			m.mu.Unlock()
			return p.rect.Contains(msg.X, msg.Y)
		}
	}
	m.mu.Unlock()

	z := m.zm.Get(id)
	if z == nil || z.IsZero() {
		return false
	}
	return z.InBounds(msg)
}

// Hits returns every known region under the pointer, topmost first: placed
// regions in reverse placement order, then marked regions innermost first
// (a region marked later inside another is reported before it).
func (m *Manager) Hits(msg tea.MouseMsg) []string {
	m.mu.Lock()
	placed := append([]placement(nil), m.placed...)
	live := append([]string(nil), m.live...)
	m.mu.Unlock()

	var hits []string
	for i := len(placed) - 1; i >= 0; i-- {
		if placed[i].rect.Contains(msg.X, msg.Y) {
			hits = append(hits, placed[i].id)
		}
	}
	for i := len(live) - 1; i >= 0; i-- {
		z := m.zm.Get(live[i])
		if z != nil && !z.IsZero() && z.InBounds(msg) {
			hits = append(hits, live[i])
		}
	}
	return hits
}

// NewPrefix returns a unique id prefix for components rendering many zones
func (m *Manager) NewPrefix() string {
	return m.zm.NewPrefix()
}

// Close stops the underlying zone worker
func (m *Manager) Close() {
	m.zm.Close()
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
