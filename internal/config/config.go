// Package config loads redline's configuration from ~/.config/redline/config.toml.
//
// A missing file is not an error: defaults apply. A file that exists but does not parse, or that carries invalid values, is a real error — silently falling
// back to defaults would mask typos.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds the persisted settings. Zero values mean "unset" during decoding; Default fills them in.
type Config struct {
	// IgnoreBlankLines is the default for diffing; flags override it.
	IgnoreBlankLines bool `toml:"ignore_blank_lines"`

	// Context is how many unchanged lines render around each change group.
	Context int `toml:"context"`

	// Color is auto, on, or off. Auto colorizes only when stdout is a terminal.
	Color string `toml:"color"`

	// ModifiedThreshold is the similarity at or above which a removed+added pair displays as one modified line. Must be in (0, 1].
	ModifiedThreshold float64 `toml:"modified_threshold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Context:           3,
		Color:             ColorAuto,
		ModifiedThreshold: 0.6,
	}
}

// Load reads the config from the standard location, applying defaults when the file is absent.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFromFile(filepath.Join(home, ".config", "redline", "config.toml"))
}

// LoadFromFile reads the config from path. A nonexistent path yields Default().
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("color must be %q, %q, or %q (got %q)", ColorAuto, ColorOn, ColorOff, cfg.Color)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("context must be >= 0 (got %d)", cfg.Context)
	}
	if cfg.ModifiedThreshold <= 0 || cfg.ModifiedThreshold > 1 {
		return fmt.Errorf("modified_threshold must be in (0, 1] (got %v)", cfg.ModifiedThreshold)
	}
	return nil
}
