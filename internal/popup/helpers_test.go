package popup

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/popup/internal/domain"
)

// fakeSurface records show/hide calls
type fakeSurface struct {
	visible    bool
	shows      int
	hides      int
	hooks      []func()
	transition domain.Transition
}

func (s *fakeSurface) Show() tea.Cmd {
	s.shows++
	s.visible = true
	return nil
}

func (s *fakeSurface) Hide() tea.Cmd {
	for _, fn := range s.hooks {
		fn()
	}
	s.hides++
	s.visible = false
	return nil
}

func (s *fakeSurface) Visible() bool { return s.visible }

func (s *fakeSurface) BeforeHide(fn func()) { s.hooks = append(s.hooks, fn) }

func (s *fakeSurface) ZoneID() string { return "surface" }

func (s *fakeSurface) SetTransition(t domain.Transition) { s.transition = t }

type rect struct{ x, y, w, h int }

// fakeHits is a HitTester over fixed rectangles; later zones are on top
type fakeHits struct {
	ids   []string
	rects map[string]rect
}

func newFakeHits() *fakeHits {
	return &fakeHits{rects: make(map[string]rect)}
}

func (h *fakeHits) add(id string, x, y, w, hgt int) {
	h.ids = append(h.ids, id)
	h.rects[id] = rect{x, y, w, hgt}
}

func (h *fakeHits) InBounds(id string, msg tea.MouseMsg) bool {
	r, ok := h.rects[id]
	if !ok {
		return false
	}
	return msg.X >= r.x && msg.X < r.x+r.w && msg.Y >= r.y && msg.Y < r.y+r.h
}

func (h *fakeHits) Hits(msg tea.MouseMsg) []string {
	var out []string
	for i := len(h.ids) - 1; i >= 0; i-- {
		if h.InBounds(h.ids[i], msg) {
			out = append(out, h.ids[i])
		}
	}
	return out
}

// clock replaces tea.Tick: it records requested delays and returns a
// command that yields the timer message immediately when run.
type clock struct {
	delays []time.Duration
}

func (c *clock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.delays = append(c.delays, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPopup(t *testing.T, cfg Config, hits HitTester) (*Popup, *fakeSurface, *clock) {
	t.Helper()
	if cfg.ID == "" {
		cfg.ID = "test"
	}
	s := &fakeSurface{}
	p := New(cfg, s, hits, quietLogger())
	c := &clock{}
	p.sched.tick = c.tick
	return p, s, c
}

func config(tt domain.TriggerType, triggers ...string) Config {
	cfg := DefaultConfig()
	cfg.TriggerType = tt
	cfg.Triggers = triggers
	return cfg
}

// fire runs a command, as the bubbletea runtime would once its delay
// elapsed, and feeds any resulting messages back into the popup.
func fire(p *Popup, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			fire(p, c)
		}
	case nil:
	default:
		fire(p, p.Update(msg))
	}
}

func over(id string) Event  { return Event{Kind: EventMouseOver, Target: id} }
func out(id string) Event   { return Event{Kind: EventMouseOut, Target: id} }
func click(id string) Event { return Event{Kind: EventClick, Target: id} }

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
