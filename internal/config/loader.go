package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative override location.
const LocalConfigPath = "configs/ztapz.yaml"

// LoadZTapz loads the game configuration.
// Search order: customPath -> ~/.ztapz/configs/ztapz.yaml -> ./configs/ztapz.yaml -> embedded default
func LoadZTapz(customPath string) (ZTapzConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZTapzConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseZTapz(data)
		if err != nil {
			return ZTapzConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ztapz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseZTapz(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := parseZTapz(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseZTapz(defaultZTapzYAML)
	if err != nil {
		return DefaultZTapzConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseZTapz decodes YAML on top of the defaults, so partial files only
// override what they mention.
func parseZTapz(data []byte) (ZTapzConfig, error) {
	cfg := DefaultZTapzConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZTapzConfig{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ztapz", "configs", filename)
}
