// Package config loads the host-side watch configuration. The device
// build compiles its preferences in and never touches this package.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config controls the host simulator.
type Config struct {
	// ClockStyle is "12h" or "24h". Anything else falls back to "24h".
	ClockStyle string `toml:"clock_style"`
	// Round selects the round-watch layout and a square framebuffer.
	Round bool `toml:"round"`
	// TickHz is the headless tick rate.
	TickHz int `toml:"tick_hz"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{ClockStyle: "24h", TickHz: 60}
}

// Path resolves the config file location: the explicit path when
// given, else $XDG_CONFIG_HOME/binwatch/config.toml, else
// ~/.config/binwatch/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "binwatch", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "binwatch", "config.toml")
}

// Load reads the config at Path(explicit). A missing file is not an
// error; defaults are returned. A malformed file returns defaults plus
// the parse error so the caller can log it and keep running.
func Load(explicit string) (Config, error) {
	cfg := Default()
	path := Path(explicit)
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	switch c.ClockStyle {
	case "12h", "24h":
	default:
		c.ClockStyle = "24h"
	}
	if c.TickHz < 1 {
		c.TickHz = 1
	}
	if c.TickHz > 240 {
		c.TickHz = 240
	}
}

// Use24Hour reports the parsed clock style.
func (c Config) Use24Hour() bool { return c.ClockStyle != "12h" }
