// Package config loads settings for the verbal command: built-in defaults,
// then an optional TOML file, then VERBAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the window, rendering and logging settings.
type Config struct {
	Width      int    `toml:"width" envconfig:"WIDTH"`
	Height     int    `toml:"height" envconfig:"HEIGHT"`
	Background string `toml:"background" envconfig:"BACKGROUND"`
	Title      string `toml:"title" envconfig:"TITLE"`
	TPS        int    `toml:"tps" envconfig:"TPS"`
	LogLevel   string `toml:"log_level" envconfig:"LOG_LEVEL"`
	OutDir     string `toml:"out_dir" envconfig:"OUT_DIR"`
}

// Default returns the built-in settings every other source overrides.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "#ffffff",
		Title:      "verbal",
		TPS:        60,
		LogLevel:   "info",
		OutDir:     "snapshots",
	}
}

// Load resolves the configuration. An empty path skips the file layer; a
// missing file at a non-empty path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := envconfig.Process("verbal", &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in a TOML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Background != "" {
		if _, err := colorful.Hex(c.Background); err != nil {
			errs = append(errs, fmt.Errorf("background %q: %w", c.Background, err))
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
