package domain

import (
	"strings"
	"time"
)

// DefaultDuration is the animation length used when none is configured
const DefaultDuration = 250 * time.Millisecond

// Transition is the animated show/hide style of a popup
type Transition struct {
	Fade     bool
	Slide    bool
	Duration time.Duration
}

// ParseTransition derives a Transition from an effect string such as
// "fade", "slide" or "fade slide". Anything else disables animation.
func ParseTransition(effect string, duration time.Duration) Transition {
	effect = strings.ToLower(effect)
	return Transition{
		Fade:     strings.Contains(effect, "fade"),
		Slide:    strings.Contains(effect, "slide"),
		Duration: duration,
	}
}

// Animated reports whether showing or hiding should be animated
func (t Transition) Animated() bool {
	return (t.Fade || t.Slide) && t.Duration > 0
}
