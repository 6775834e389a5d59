package popup

import tea "github.com/charmbracelet/bubbletea"

// pointerState remembers what the pointer was over after the last mouse
// message so enter/leave transitions can be derived from absolute positions.
type pointerState struct {
	trigger   string
	onSurface bool
}

// track converts a mouse message into interaction events. Leaving the old
// trigger is reported before entering the new one, and trigger transitions
// before surface transitions, so a move from a trigger straight onto the
// surface schedules a hide and then cancels it.
func (p *Popup) track(msg tea.MouseMsg) []Event {
	if p.hits == nil {
		return nil
	}

	onSurface := p.hits.InBounds(p.surface.ZoneID(), msg)
	trigger := ""
	if !onSurface {
		trigger = p.triggerAt(msg)
	}

	var events []Event
	if trigger != p.pointer.trigger {
		if p.pointer.trigger != "" {
			events = append(events, Event{Kind: EventMouseOut, Target: p.pointer.trigger})
		}
		if trigger != "" {
			events = append(events, Event{Kind: EventMouseOver, Target: trigger})
		}
	}
	if onSurface != p.pointer.onSurface {
		if onSurface {
			events = append(events, Event{Kind: EventSurfaceEnter})
		} else {
			events = append(events, Event{Kind: EventSurfaceLeave})
		}
	}
	p.pointer = pointerState{trigger: trigger, onSurface: onSurface}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case onSurface:
			events = append(events, Event{Kind: EventSurfaceMouseDown})
		case trigger != "":
			events = append(events, Event{Kind: EventClick, Target: trigger})
		default:
			events = append(events, Event{Kind: EventOutsidePress})
		}
	}
	return events
}

// triggerAt finds the trigger under the pointer. Without a delegate each
// configured trigger zone is tested directly. With one, the zones under the
// pointer inside the delegate are matched against the trigger patterns.
func (p *Popup) triggerAt(msg tea.MouseMsg) string {
	if p.cfg.Delegate == "" {
		for _, id := range p.registry.triggers {
			if p.hits.InBounds(id, msg) {
				return id
			}
		}
		return ""
	}

	if !p.hits.InBounds(p.cfg.Delegate, msg) {
		return ""
	}
	for _, id := range p.hits.Hits(msg) {
		if id != p.cfg.Delegate && p.registry.Contains(id) {
			return id
		}
	}
	return ""
}
