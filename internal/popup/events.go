package popup

// EventKind identifies a raw interaction
type EventKind int

const (
	EventMouseOver EventKind = iota
	EventMouseOut
	EventClick
	EventFocus
	EventBlur
	EventSurfaceEnter
	EventSurfaceLeave
	EventSurfaceMouseDown
	EventOutsidePress
)

func (k EventKind) String() string {
	switch k {
	case EventMouseOver:
		return "mouseover"
	case EventMouseOut:
		return "mouseout"
	case EventClick:
		return "click"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventSurfaceEnter:
		return "surface-enter"
	case EventSurfaceLeave:
		return "surface-leave"
	case EventSurfaceMouseDown:
		return "surface-mousedown"
	case EventOutsidePress:
		return "outside-press"
	default:
		return "unknown"
	}
}

// targetsTrigger reports whether events of this kind name a trigger
func (k EventKind) targetsTrigger() bool {
	return k <= EventBlur
}

// Event is one interaction delivered to a popup. Target is the trigger zone
// id for trigger events and empty otherwise.
type Event struct {
	Kind   EventKind
	Target string
}

// FocusMsg tells popups that keyboard focus moved onto Target
type FocusMsg struct {
	Target string
}

// BlurMsg tells popups that keyboard focus left Target
type BlurMsg struct {
	Target string
}
