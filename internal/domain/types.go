// Package domain contains the shared types of the popup system.
package domain

import "strings"

// TriggerType selects how a popup reacts to its triggers
type TriggerType int

const (
	TriggerHover TriggerType = iota
	TriggerClick
	TriggerFocus
)

func (t TriggerType) String() string {
	switch t {
	case TriggerClick:
		return "click"
	case TriggerFocus:
		return "focus"
	default:
		return "hover"
	}
}

// ParseTriggerType maps a configuration string to a TriggerType.
// Unknown values fall back to hover; ok reports whether s was recognized.
func ParseTriggerType(s string) (t TriggerType, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hover":
		return TriggerHover, true
	case "click":
		return TriggerClick, true
	case "focus":
		return TriggerFocus, true
	default:
		return TriggerHover, false
	}
}

// MarshalText implements encoding.TextMarshaler
func (t TriggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode
// as hover rather than failing.
func (t *TriggerType) UnmarshalText(b []byte) error {
	*t, _ = ParseTriggerType(string(b))
	return nil
}
