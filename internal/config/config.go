// Package config loads runtime settings for ls-ephemeris.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/litescript/ls-ephemeris/internal/astro"
	"github.com/litescript/ls-ephemeris/internal/frame"
)

const (
	// FileName is the config file looked up in the working directory and
	// the user's home directory.
	FileName = ".ls-ephemeris.toml"

	// EnvPrefix prefixes every environment override, e.g. LSEPHEM_LATITUDE.
	EnvPrefix = "LSEPHEM"

	MinRefresh = 100 * time.Millisecond
	MaxRefresh = time.Minute
)

// ErrConfigExists is returned by WriteDefault when the target file is present.
var ErrConfigExists = errors.New("config file already exists")

// Config holds all runtime configuration.
// Values are populated from .ls-ephemeris.toml, LSEPHEM_* env vars, and CLI flags.
type Config struct {
	Latitude     string        `mapstructure:"latitude" toml:"latitude"`
	Longitude    string        `mapstructure:"longitude" toml:"longitude"`
	LocationName string        `mapstructure:"location_name" toml:"location_name"`
	Timezone     string        `mapstructure:"timezone" toml:"timezone"`
	Refresh      time.Duration `mapstructure:"refresh" toml:"refresh"`
	LogLevel     string        `mapstructure:"log_level" toml:"log_level"`
	LogFile      string        `mapstructure:"log_file" toml:"log_file,omitempty"`
}

// Default returns the built-in configuration: the Royal Observatory,
// Greenwich, on the local clock, refreshed once a second.
func Default() Config {
	return Config{
		Latitude:     "51.4769",
		Longitude:    "-0.0005",
		LocationName: "Greenwich",
		Timezone:     "",
		Refresh:      time.Second,
		LogLevel:     "info",
	}
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("latitude", d.Latitude)
	v.SetDefault("longitude", d.Longitude)
	v.SetDefault("location_name", d.LocationName)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("refresh", d.Refresh)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
}

// Init points v at the config file (explicit path, or .ls-ephemeris.toml in
// the working or home directory) and enables env overrides. A missing file
// is not an error; a malformed one is.
func Init(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Refresh = ClampRefresh(cfg.Refresh)
	return cfg, nil
}

// ClampRefresh bounds the refresh interval to [MinRefresh, MaxRefresh].
func ClampRefresh(d time.Duration) time.Duration {
	switch {
	case d < MinRefresh:
		return MinRefresh
	case d > MaxRefresh:
		return MaxRefresh
	default:
		return d
	}
}

// Location resolves the configured coordinates and timezone into an observer.
func (c Config) Location() (frame.Location, error) {
	coord, err := astro.ParseCoordinate(c.Latitude, c.Longitude)
	if err != nil {
		return frame.Location{}, err
	}

	zone := time.Local
	if c.Timezone != "" {
		zone, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return frame.Location{}, fmt.Errorf("timezone %q: %w", c.Timezone, err)
		}
	}

	return frame.Location{Name: c.LocationName, Coordinate: coord, Zone: zone}, nil
}

// fileConfig is the on-disk shape; go-toml has no native duration form.
type fileConfig struct {
	Latitude     string `toml:"latitude"`
	Longitude    string `toml:"longitude"`
	LocationName string `toml:"location_name"`
	Timezone     string `toml:"timezone"`
	Refresh      string `toml:"refresh"`
	LogLevel     string `toml:"log_level"`
}

// Marshal renders c as a TOML config file.
func Marshal(c Config) ([]byte, error) {
	return toml.Marshal(fileConfig{
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		LocationName: c.LocationName,
		Timezone:     c.Timezone,
		Refresh:      c.Refresh.String(),
		LogLevel:     c.LogLevel,
	})
}

// WriteDefault writes the built-in configuration to path. An existing file
// is left alone unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s; use --force to overwrite", ErrConfigExists, path)
	}

	data, err := Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
