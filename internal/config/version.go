package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/riordanpawley/popup/internal/domain"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// Format is a config file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, ext)
	}
}

// Coord is an alignment coordinate as written in a config file. Plain
// numbers are accepted as well as strings.
type Coord string

// UnmarshalJSON accepts a JSON string or number
func (c *Coord) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = Coord(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("coordinate must be a number or string, got %s", b)
	}
	*c = Coord(n.String())
	return nil
}

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: a popup's single "trigger" becomes a "triggers" list
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			popups, _ := data["popups"].(map[string]interface{})
			for name, raw := range popups {
				section, ok := raw.(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("popup %s: section must be a table", name)
				}
				if trigger, ok := section["trigger"]; ok {
					if _, exists := section["triggers"]; !exists {
						section["triggers"] = []interface{}{trigger}
					}
					delete(section, "trigger")
				}
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// decodeRaw decodes any supported format into a generic map so migrations
// can be applied before the typed decode
func decodeRaw(data []byte, format Format) (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", format, err)
	}
	if raw == nil {
		raw = make(map[string]interface{})
	}
	return raw, nil
}

func rawVersion(raw map[string]interface{}) int {
	switch v := raw["version"].(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte, format Format) (*Config, error) {
	rawConfig, err := decodeRaw(data, format)
	if err != nil {
		return nil, err
	}

	// Detect version (0 if not present = legacy config)
	version := rawVersion(rawConfig)

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		rawConfig, err = ApplyMigrations(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	// Re-marshal the migrated map so every format goes through one typed decode
	migratedData, err := json.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(migratedData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config stamped with the current version
func MarshalVersionedConfig(cfg *Config, format Format) ([]byte, error) {
	stamped := *cfg
	stamped.Version = CurrentVersion

	switch format {
	case FormatJSON:
		return json.MarshalIndent(&stamped, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(&stamped); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(&stamped)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}
