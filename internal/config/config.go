// Package config handles noticeguide configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents noticeguide configuration options
type Config struct {
	// Language selects the guidance output language ("en" or "es")
	Language string `yaml:"language"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// JSONOutput emits machine-readable JSON instead of rendered text
	JSONOutput bool `yaml:"json_output"`
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() *Config {
	return &Config{
		Language:   "en",
		LogLevel:   "info",
		JSONOutput: false,
	}
}

// LoadConfig loads configuration from a YAML file, merging file values over
// defaults. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.Language != "" {
		cfg.Language = fileCfg.Language
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.JSONOutput {
		cfg.JSONOutput = fileCfg.JSONOutput
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from the conventional location
// under the given directory (.noticeguide/config.yaml).
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".noticeguide", "config.yaml"))
}

// Validate checks that configured enum values are recognized
func (c *Config) Validate() error {
	switch c.Language {
	case "en", "es":
	default:
		return fmt.Errorf("invalid language %q: must be \"en\" or \"es\"", c.Language)
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}
