package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the interpreter configuration.
// Search order: customPath -> ~/.leaky/config.yaml -> ./configs/leaky.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/leaky.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Landmarks {
	case LandmarksFromSource, LandmarksFixed:
	default:
		return fmt.Errorf("unknown landmarks mode %q (want %q or %q)",
			c.Landmarks, LandmarksFromSource, LandmarksFixed)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must not be negative, got %d", c.MaxTicks)
	}
	if c.StepDelayMS < 0 {
		return fmt.Errorf("step_delay_ms must not be negative, got %d", c.StepDelayMS)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leaky", "config.yaml")
}
