// Package config provides optional YAML configuration for the CLI.
// Command-line flags always take precedence over file values.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given
const DefaultFileName = "course-planner.yml"

// Config holds all file-backed settings
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	NoColor bool          `yaml:"no_color"`
}

// CatalogConfig holds catalog file settings
type CatalogConfig struct {
	// Path is the default catalog file used when a command or the
	// interactive planner is not given one explicitly
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and parses the config file at path and applies defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads the config file at path when it exists and falls back
// to defaults when it does not. A path that exists but fails to parse is
// still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		cfg := &Config{}
		ApplyDefaults(cfg)
		return cfg, nil
	}
	return Load(path)
}

// ApplyDefaults fills in defaults for any zero values in cfg
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
