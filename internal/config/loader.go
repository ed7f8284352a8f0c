package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked by Load.
const LocalPath = "configs/dodgey.yaml"

// Load loads the session tuning and validates it.
// Search order: customPath -> ~/.dodgey/configs/dodgey.yaml -> ./configs/dodgey.yaml -> embedded default.
// Files are overlaid on Default(), so a partial file only overrides what it names.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped when missing or unparsable.
func Load(customPath string) (DodgeyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DodgeyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("dodgey.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultDodgeyYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays YAML data on Default() and validates the result.
func Parse(data []byte) (DodgeyConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DodgeyConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg DodgeyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodgey", "configs", filename)
}
