package config

import (
	"fmt"

	"github.com/wizzomafizzo/linelint/internal/lineending"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default linelint configuration
func DefaultConfig() *Config {
	return &Config{
		LineEnding:      lineending.Auto,
		FollowSymlinks:  true,
		GitIgnore:       true,
		GlobalGitIgnore: true,
		Logging: Logging{
			Level: "info",
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML, suitable as
// a starting point for a linelint.yml file.
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}
	return data, nil
}
