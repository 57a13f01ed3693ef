package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the embedded defaults, overlaid with customPath when it is set.
// No other location is searched: without a path the game never touches the
// filesystem for settings.
func Load(customPath string) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
