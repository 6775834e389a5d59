package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownFormat  = errors.New("unknown config format")
	ErrInvalidPattern = errors.New("invalid trigger pattern")
	ErrNoTriggers     = errors.New("no triggers configured")
)

// ConfigError represents an invalid setting of a configured popup
type ConfigError struct {
	Popup   string // Optional: popup name
	Field   string // Setting that failed: "align.baseXY", "triggers", ...
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Popup != "" {
		if e.Err != nil {
			return fmt.Sprintf("popup %s: %s: %v", e.Popup, e.Field, e.Err)
		}
		return fmt.Sprintf("popup %s: %s: %s", e.Popup, e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
