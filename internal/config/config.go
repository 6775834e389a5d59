package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/popup/internal/domain"
	"github.com/riordanpawley/popup/internal/popup"
)

// Config represents the full popupdemo configuration
type Config struct {
	Version int                    `json:"version" toml:"version" yaml:"version"`
	Log     LogConfig              `json:"log" toml:"log" yaml:"log"`
	Popups  map[string]PopupConfig `json:"popups" toml:"popups" yaml:"popups"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file" toml:"file" yaml:"file"`
	Level string `json:"level" toml:"level" yaml:"level"`
}

// PopupConfig configures one named popup. Delays and durations are in
// milliseconds.
type PopupConfig struct {
	Triggers           []string    `json:"triggers" toml:"triggers" yaml:"triggers"`
	TriggerType        string      `json:"triggerType" toml:"triggerType" yaml:"triggerType"`
	Delegate           string      `json:"delegate,omitempty" toml:"delegate,omitempty" yaml:"delegate,omitempty"`
	Align              AlignConfig `json:"align" toml:"align" yaml:"align"`
	Delay              *int        `json:"delay,omitempty" toml:"delay,omitempty" yaml:"delay,omitempty"`
	Disabled           bool        `json:"disabled" toml:"disabled" yaml:"disabled"`
	Effect             string      `json:"effect,omitempty" toml:"effect,omitempty" yaml:"effect,omitempty"`
	Duration           int         `json:"duration" toml:"duration" yaml:"duration"`
	HideOnOutsidePress *bool       `json:"hideOnOutsidePress,omitempty" toml:"hideOnOutsidePress,omitempty" yaml:"hideOnOutsidePress,omitempty"`
	DismissKeys        []string    `json:"dismissKeys,omitempty" toml:"dismissKeys,omitempty" yaml:"dismissKeys,omitempty"`
}

// AlignConfig places a popup relative to a base zone. Coordinates are cell
// counts, percentages, or both ("50%-2").
type AlignConfig struct {
	BaseXY      []Coord `json:"baseXY,omitempty" toml:"baseXY,omitempty" yaml:"baseXY,omitempty"`
	SelfXY      []Coord `json:"selfXY,omitempty" toml:"selfXY,omitempty" yaml:"selfXY,omitempty"`
	BaseElement string  `json:"baseElement,omitempty" toml:"baseElement,omitempty" yaml:"baseElement,omitempty"`
}

// DefaultConfig returns a Config with the demo's popups
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Log: LogConfig{
			File:  filepath.Join(os.TempDir(), "popupdemo.log"),
			Level: "info",
		},
		Popups: map[string]PopupConfig{
			"toolbar": {
				Triggers:    []string{"btn-file", "btn-edit", "btn-view"},
				TriggerType: "hover",
				Align:       AlignConfig{BaseXY: []Coord{"0", "100%"}},
				Effect:      "fade",
			},
			"rows": {
				Triggers:    []string{"row-*"},
				TriggerType: "hover",
				Delegate:    "rows",
				Align:       AlignConfig{BaseXY: []Coord{"100%+1", "0"}},
				Delay:       intPtr(-1),
			},
			"menu": {
				Triggers:    []string{"btn-new", "btn-open"},
				TriggerType: "click",
				Align:       AlignConfig{BaseXY: []Coord{"0", "100%"}},
				Effect:      "slide",
			},
			"search": {
				Triggers:    []string{"search"},
				TriggerType: "focus",
				Align:       AlignConfig{BaseXY: []Coord{"0", "100%"}},
			},
			"help": {
				Triggers:    []string{"btn-help"},
				TriggerType: "click",
				Align: AlignConfig{
					BaseXY:      []Coord{"50%", "50%"},
					SelfXY:      []Coord{"50%", "50%"},
					BaseElement: "screen",
				},
				Effect: "fade slide",
			},
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

// defaultPopup holds the defaults for settings a popup section leaves out
func defaultPopup() PopupConfig {
	return PopupConfig{
		TriggerType:        "hover",
		Delay:              intPtr(int(popup.DefaultDelay / time.Millisecond)),
		Duration:           int(domain.DefaultDuration / time.Millisecond),
		HideOnOutsidePress: boolPtr(true),
		DismissKeys:        []string{"esc"},
	}
}

// configNames are the files LoadConfig looks for in a directory, in order
var configNames = []string{".popupdemo.json", ".popupdemo.toml", ".popupdemo.yaml", ".popupdemo.yml"}

// LoadConfig loads configuration from path. A directory is searched for a
// .popupdemo file in any supported format; defaults are returned when there
// is none. Files are decoded by extension.
func LoadConfig(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config path: %w", err)
	}

	if info.IsDir() {
		for _, name := range configNames {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				return loadFile(candidate)
			}
		}
		return DefaultConfig(), nil
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseVersionedConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to path in the format given by its
// extension
func SaveConfig(cfg *Config, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := MarshalVersionedConfig(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults. Popups named in
// the defaults but absent from cfg are added; sections present in cfg are
// completed field by field.
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Log config
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	if cfg.Popups == nil {
		cfg.Popups = make(map[string]PopupConfig)
	}
	for name, def := range defaults.Popups {
		if _, ok := cfg.Popups[name]; !ok {
			cfg.Popups[name] = def
		}
	}

	for name, pc := range cfg.Popups {
		def, ok := defaults.Popups[name]
		if ok {
			pc = mergePopup(pc, def)
		}
		cfg.Popups[name] = mergePopup(pc, defaultPopup())
	}

	cfg.Version = CurrentVersion
	return cfg
}

func mergePopup(pc, def PopupConfig) PopupConfig {
	if pc.Triggers == nil {
		pc.Triggers = def.Triggers
	}
	if pc.TriggerType == "" {
		pc.TriggerType = def.TriggerType
	}
	if pc.Delegate == "" {
		pc.Delegate = def.Delegate
	}
	if pc.Align.BaseXY == nil {
		pc.Align.BaseXY = def.Align.BaseXY
	}
	if pc.Align.SelfXY == nil {
		pc.Align.SelfXY = def.Align.SelfXY
	}
	if pc.Align.BaseElement == "" {
		pc.Align.BaseElement = def.Align.BaseElement
	}
	if pc.Delay == nil {
		pc.Delay = def.Delay
	}
	if pc.Effect == "" {
		pc.Effect = def.Effect
	}
	if pc.Duration == 0 {
		pc.Duration = def.Duration
	}
	if pc.HideOnOutsidePress == nil {
		pc.HideOnOutsidePress = def.HideOnOutsidePress
	}
	if pc.DismissKeys == nil {
		pc.DismissKeys = def.DismissKeys
	}
	return pc
}

// Validate checks every popup section and returns all problems found
func Validate(cfg *Config) error {
	var errs []error
	for name, pc := range cfg.Popups {
		if len(pc.Triggers) == 0 {
			errs = append(errs, &domain.ConfigError{Popup: name, Field: "triggers", Err: domain.ErrNoTriggers})
		}
		if pc.Delegate != "" {
			for _, pattern := range pc.Triggers {
				if !doublestar.ValidatePattern(pattern) {
					errs = append(errs, &domain.ConfigError{
						Popup: name,
						Field: "triggers",
						Err:   fmt.Errorf("%w: %q", domain.ErrInvalidPattern, pattern),
					})
				}
			}
		}
		if _, err := pc.Align.Resolve(); err != nil {
			errs = append(errs, &domain.ConfigError{Popup: name, Field: "align", Err: err})
		}
		if pc.Duration < 0 {
			errs = append(errs, &domain.ConfigError{Popup: name, Field: "duration", Message: "must not be negative"})
		}
	}
	return errors.Join(errs...)
}

// Resolve converts the configured coordinates into an alignment. Missing
// pairs keep the default alignment.
func (a AlignConfig) Resolve() (domain.Align, error) {
	align := domain.DefaultAlign()
	align.BaseElement = a.BaseElement

	if err := resolvePair(a.BaseXY, &align.BaseXY); err != nil {
		return align, fmt.Errorf("baseXY: %w", err)
	}
	if err := resolvePair(a.SelfXY, &align.SelfXY); err != nil {
		return align, fmt.Errorf("selfXY: %w", err)
	}
	return align, nil
}

func resolvePair(in []Coord, out *[2]domain.Coord) error {
	if len(in) == 0 {
		return nil
	}
	if len(in) != 2 {
		return fmt.Errorf("want 2 coordinates, got %d", len(in))
	}
	for i, c := range in {
		parsed, err := domain.ParseCoord(string(c))
		if err != nil {
			return err
		}
		out[i] = parsed
	}
	return nil
}

// Popup builds the runtime configuration of the named popup. An unknown
// trigger type falls back to hover with a warning.
func (c *Config) Popup(name string, logger *slog.Logger) (popup.Config, error) {
	pc, ok := c.Popups[name]
	if !ok {
		return popup.Config{}, &domain.ConfigError{Popup: name, Field: "popups", Message: "not configured"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	out := popup.DefaultConfig()
	out.ID = name
	out.Triggers = pc.Triggers
	out.Delegate = pc.Delegate
	out.Disabled = pc.Disabled
	out.Effect = pc.Effect

	tt, ok := domain.ParseTriggerType(pc.TriggerType)
	if !ok && pc.TriggerType != "" {
		logger.Warn("unknown trigger type, using hover", "popup", name, "trigger_type", pc.TriggerType)
	}
	out.TriggerType = tt

	align, err := pc.Align.Resolve()
	if err != nil {
		return popup.Config{}, &domain.ConfigError{Popup: name, Field: "align", Err: err}
	}
	out.Align = align

	if pc.Delay != nil {
		out.Delay = time.Duration(*pc.Delay) * time.Millisecond
	}
	if pc.Duration > 0 {
		out.Duration = time.Duration(pc.Duration) * time.Millisecond
	}
	if pc.HideOnOutsidePress != nil {
		out.HideOnOutsidePress = *pc.HideOnOutsidePress
	}
	if len(pc.DismissKeys) > 0 {
		out.Dismiss = key.NewBinding(
			key.WithKeys(pc.DismissKeys...),
			key.WithHelp(strings.Join(pc.DismissKeys, "/"), "close popup"),
		)
	}
	return out, nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
