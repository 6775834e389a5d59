package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/popup/internal/ui/zones"
)

// fakePlacer records placed rectangles in memory
type fakePlacer struct {
	rects map[string]zones.Rect
}

func newFakePlacer() *fakePlacer {
	return &fakePlacer{rects: make(map[string]zones.Rect)}
}

func (p *fakePlacer) Rect(id string) (zones.Rect, bool) {
	r, ok := p.rects[id]
	return r, ok
}

func (p *fakePlacer) Place(id string, r zones.Rect) {
	p.rects[id] = r
}

func (p *fakePlacer) Remove(id string) {
	delete(p.rects, id)
}

// fakeMarker records the zone ids it was asked to mark
type fakeMarker struct {
	ids []string
}

func (m *fakeMarker) Mark(id, s string) string {
	m.ids = append(m.ids, id)
	return s
}

// immediateTick returns a tick that fires without waiting
func immediateTick(delays *[]time.Duration) tickFunc {
	return func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		if delays != nil {
			*delays = append(*delays, d)
		}
		return func() tea.Msg {
			return fn(time.Time{})
		}
	}
}

// runFrames feeds frame messages back into l until the animation stops and
// returns how many frames were delivered
func runFrames(l *Layer, cmd tea.Cmd) int {
	n := 0
	for cmd != nil {
		cmd = l.Update(cmd())
		n++
	}
	return n
}
