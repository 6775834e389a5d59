package popup

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Registry holds the configured triggers and tracks which one is active.
// When flags are tracked (click mode) it also records which trigger owns
// the open popup; at most one trigger is flagged at a time.
type Registry struct {
	triggers  []string
	delegated bool
	active    string

	trackFlags bool
	flags      map[string]bool
}

// NewRegistry creates a registry over triggers. With delegated set, trigger
// entries are glob patterns matched against zone ids.
func NewRegistry(triggers []string, delegated, trackFlags bool) *Registry {
	r := &Registry{
		triggers:   append([]string(nil), triggers...),
		delegated:  delegated,
		trackFlags: trackFlags,
		flags:      make(map[string]bool),
	}

	// Default to the first trigger so an alignment read before any
	// interaction still has a base element.
	for _, t := range r.triggers {
		if !delegated || isLiteral(t) {
			r.active = t
			break
		}
	}
	return r
}

// Triggers returns a copy of the configured trigger set
func (r *Registry) Triggers() []string {
	return append([]string(nil), r.triggers...)
}

// Empty reports whether no triggers are configured
func (r *Registry) Empty() bool {
	return len(r.triggers) == 0
}

// Contains reports whether id is one of the triggers
func (r *Registry) Contains(id string) bool {
	if id == "" {
		return false
	}
	for _, t := range r.triggers {
		if t == id {
			return true
		}
		if r.delegated {
			if ok, err := doublestar.Match(t, id); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// Active returns the current active trigger, or "" before one is known
func (r *Registry) Active() string {
	return r.active
}

// SetActive makes id the active trigger. In flag-tracking mode the flag
// moves to id and is cleared on every other trigger. Unknown ids are ignored.
func (r *Registry) SetActive(id string) {
	if !r.Contains(id) {
		return
	}
	r.active = id
	if r.trackFlags {
		clear(r.flags)
		r.flags[id] = true
	}
}

// Clear drops every active flag. The active trigger itself is kept so the
// popup stays aligned to it while hiding.
func (r *Registry) Clear() {
	clear(r.flags)
}

// Flagged reports whether id currently owns the open popup
func (r *Registry) Flagged(id string) bool {
	return r.flags[id]
}

// Owner returns the flagged trigger, or ""
func (r *Registry) Owner() string {
	for id, on := range r.flags {
		if on {
			return id
		}
	}
	return ""
}

func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `*?[{\`)
}
