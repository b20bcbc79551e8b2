// Package config loads gridsheet settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GridConfig holds the grid dimensions
type GridConfig struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// Config is the top-level configuration
type Config struct {
	Window WindowConfig `toml:"window"`
	Grid   GridConfig   `toml:"grid"`
	// Theme selects a named color theme (see render.ThemeByName).
	Theme string `toml:"theme"`
	// BlinkIntervalMs is the cursor blink period in milliseconds.
	BlinkIntervalMs int `toml:"blink_interval_ms"`
	// TickIntervalMs is the demo value-feed period in milliseconds.
	TickIntervalMs int `toml:"tick_interval_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  960,
			Height: 640,
			Title:  "gridsheet",
		},
		Grid: GridConfig{
			Rows: 8,
			Cols: 4,
		},
		Theme:           "ledger-blue",
		BlinkIntervalMs: 500,
		TickIntervalMs:  1500,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gridsheet", "config.toml")
	}
	return ""
}

// Load reads a config file, applying defaults for missing fields. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Grid.Rows < 1 || c.Grid.Rows > 256 {
		return fmt.Errorf("config: grid rows %d outside 1..256", c.Grid.Rows)
	}
	if c.Grid.Cols < 1 || c.Grid.Cols > 64 {
		return fmt.Errorf("config: grid cols %d outside 1..64", c.Grid.Cols)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("config: window size %dx%d invalid", c.Window.Width, c.Window.Height)
	}
	return nil
}
