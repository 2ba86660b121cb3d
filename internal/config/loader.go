package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads the flight configuration.
// Search order: customPath -> ~/.rockflight/configs/flight.yaml|toml ->
// ./configs/flight.yaml -> embedded default.
// Only an unreadable or invalid customPath is an error; misses on the
// search path fall through to the next candidate.
func Load(customPath string) (FlightConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, name := range []string{"flight.yaml", "flight.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if cfg, err := LoadFile(userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", "flight.yaml")); err == nil {
		return cfg, nil
	}

	cfg := DefaultFlightConfig()
	if err := yaml.Unmarshal(defaultFlightYAML, &cfg); err != nil {
		return DefaultFlightConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file. Keys missing from the file keep their
// default values. The format is chosen by extension: .toml is TOML,
// anything else YAML.
func LoadFile(path string) (FlightConfig, error) {
	cfg := DefaultFlightConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by path.
func Decode(path string, data []byte, cfg *FlightConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg FlightConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockflight", "configs", filename)
}
