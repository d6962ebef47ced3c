package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cnharrison/reqview/internal/jsonview"
)

// Highlight holds the tview colors used for matched search text
type Highlight struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// Log configures the file logger. The terminal belongs to the UI, so logs never go to stderr.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Config is the reqview configuration file
type Config struct {
	Indent    int       `yaml:"indent"`
	Highlight Highlight `yaml:"highlight"`
	Log       Log       `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Indent: jsonview.DefaultIndent,
		Highlight: Highlight{
			Foreground: "black",
			Background: "yellow",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reqview", "config.yaml")
}

// Load reads configuration from path on top of the defaults. An empty path
// means DefaultPath, which is allowed to be missing; an explicit path is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > jsonview.MaxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", jsonview.MaxIndent, c.Indent)
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q", c.Log.Level)
		}
	}
	return nil
}
