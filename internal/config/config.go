// Package config loads CLI defaults from an optional TOML file.
//
// Values are resolved in priority order:
// 1. Built-in defaults
// 2. Config file (ganttscale.toml in the working directory, or --config)
// 3. CLI flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bryan-cox/ganttscale/internal/model"
)

// Default values.
const (
	DefaultPath         = "ganttscale.toml"
	DefaultPixelsPerDay = 20
	DefaultMode         = "week"
	DefaultTimezone     = "UTC"
	DefaultFormat       = "text"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the settings a timeline is created with.
type Config struct {
	PixelsPerDay int    `toml:"pixels_per_day"`
	Mode         string `toml:"mode"`
	Timezone     string `toml:"timezone"`
	Format       string `toml:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		PixelsPerDay: DefaultPixelsPerDay,
		Mode:         DefaultMode,
		Timezone:     DefaultTimezone,
		Format:       DefaultFormat,
	}
}

// Load reads the TOML file at path over the defaults. When explicit is false a
// missing file is not an error and the defaults are returned as-is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse TOML from '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value can be used to build a timeline.
func (c Config) Validate() error {
	if c.PixelsPerDay <= 0 {
		return fmt.Errorf("pixels_per_day must be positive, got %d", c.PixelsPerDay)
	}
	if _, err := model.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q, use one of text, yaml, json", c.Format)
	}
	return nil
}

// Location resolves the configured timezone name.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
