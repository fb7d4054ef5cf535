// Package config loads linelint settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/constants"
	"github.com/wizzomafizzo/linelint/internal/lineending"
	"github.com/wizzomafizzo/linelint/internal/logging"
	"github.com/wizzomafizzo/linelint/internal/walker"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when an explicitly requested config file
// does not exist.
var ErrConfigNotFound = errors.New("config file not found")

type Config struct {
	Logging         Logging           `yaml:"logging"`
	Exclude         []string          `yaml:"exclude,omitempty"`
	LineEnding      lineending.Policy `yaml:"line_ending"`
	FollowSymlinks  bool              `yaml:"follow_symlinks"`
	GitIgnore       bool              `yaml:"gitignore"`
	GlobalGitIgnore bool              `yaml:"global_gitignore"`
}

type Logging struct {
	Level string `yaml:"level,omitempty"`
	Path  string `yaml:"path,omitempty"`
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(fsys afero.Fs, dir string) string {
	for _, name := range constants.ConfigFilenames {
		path := filepath.Join(dir, name)
		if info, err := fsys.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the config file at path. An empty path yields DefaultConfig.
// Fields missing from the file keep their default values.
func Load(fsys afero.Fs, path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromYAML parses and validates config YAML. Unknown keys are rejected.
func LoadFromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks exclude globs and the log level.
func (c *Config) Validate() error {
	for i, pattern := range c.Exclude {
		if pattern == "" {
			return fmt.Errorf("exclude %d: pattern cannot be empty", i+1)
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("exclude %d: invalid glob pattern '%s'", i+1, pattern)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// WalkerOptions returns the traversal settings of c.
func (c *Config) WalkerOptions() walker.Options {
	return walker.Options{
		Exclude:         c.Exclude,
		FollowSymlinks:  c.FollowSymlinks,
		GitIgnore:       c.GitIgnore,
		GlobalGitIgnore: c.GlobalGitIgnore,
	}
}
