package popup

import tea "github.com/charmbracelet/bubbletea"

// Mode is the resolved interaction pattern of a popup
type Mode string

const (
	ModeHover   Mode = "hover"
	ModeTooltip Mode = "tooltip"
	ModeClick   Mode = "click"
	ModeFocus   Mode = "focus"
)

// strategy turns raw events into registry, scheduler and gate calls
type strategy interface {
	handle(ev Event) tea.Cmd
}

// nopStrategy is bound when there are no triggers: the popup never shows
// on its own.
type nopStrategy struct{}

func (nopStrategy) handle(Event) tea.Cmd { return nil }

// hoverStrategy debounces both directions by the configured delay. Moving
// from a trigger onto the surface keeps the popup open.
type hoverStrategy struct {
	p *Popup
}

func (s hoverStrategy) handle(ev Event) tea.Cmd {
	p := s.p
	switch ev.Kind {
	case EventMouseOver:
		p.sched.CancelHide()
		p.registry.SetActive(ev.Target)
		return p.sched.ScheduleShow(p.cfg.Delay, p.gate.Show)
	case EventSurfaceEnter:
		p.sched.CancelHide()
	case EventMouseOut, EventSurfaceLeave:
		p.sched.CancelShow()
		if p.gate.Visible() {
			return p.sched.ScheduleHide(p.cfg.Delay, p.gate.Hide)
		}
	}
	return nil
}

// tooltipStrategy is hover without timers: over shows, out hides, and the
// surface gets no special treatment.
type tooltipStrategy struct {
	p *Popup
}

func (s tooltipStrategy) handle(ev Event) tea.Cmd {
	p := s.p
	switch ev.Kind {
	case EventMouseOver:
		p.registry.SetActive(ev.Target)
		return p.gate.Show()
	case EventMouseOut:
		return p.gate.Hide()
	}
	return nil
}

// clickStrategy toggles the popup per trigger. The flagged trigger owns the
// open popup; clicking it again closes, clicking another moves ownership.
type clickStrategy struct {
	p *Popup
}

func (s clickStrategy) handle(ev Event) tea.Cmd {
	p := s.p
	if ev.Kind != EventClick {
		return nil
	}
	if p.registry.Flagged(ev.Target) {
		return p.gate.Hide()
	}
	s.activate(ev.Target)
	return p.gate.Show()
}

// activate moves the flag to id. Bookkeeping is frozen while disabled.
func (s clickStrategy) activate(id string) {
	if s.p.gate.Disabled() {
		return
	}
	s.p.registry.SetActive(id)
}

// beforeHide runs on every hide so the flags never outlive visibility
func (s clickStrategy) beforeHide() {
	if s.p.gate.Disabled() {
		return
	}
	s.p.registry.Clear()
}

// focusStrategy shows on focus and hides after the delay on blur, unless the
// pointer went down on the surface in between (for example to pick an item
// from the popup, which steals focus from the trigger).
type focusStrategy struct {
	p             *Popup
	downOnSurface bool
}

func (s *focusStrategy) handle(ev Event) tea.Cmd {
	p := s.p
	switch ev.Kind {
	case EventFocus:
		// The cancelled blur hide would have consumed the guard.
		p.sched.CancelHide()
		s.downOnSurface = false
		p.registry.SetActive(ev.Target)
		return p.gate.Show()
	case EventBlur:
		return p.sched.ScheduleHide(p.cfg.Delay, s.blurHide)
	case EventSurfaceMouseDown:
		s.downOnSurface = true
	}
	return nil
}

func (s *focusStrategy) blurHide() tea.Cmd {
	keep := s.downOnSurface
	s.downOnSurface = false
	if keep {
		return nil
	}
	return s.p.gate.Hide()
}
