package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional gen-policy.yaml file.
// It only tunes diagnostics; the generated source is fixed.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// DefaultLevel keeps a default run silent apart from failures.
const DefaultLevel = "warn"

// Load reads and parses the config file at path, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}
	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = DefaultLevel
	}
}
