// Package config loads the CLI configuration file (TOML).
//
// Every field has a default; a missing file is not an error when no path
// was given explicitly. Command-line flags override file values.
//
//	[engine]
//	epsilon = 1e-9
//	prune   = true
//
//	[batch]
//	workers = 8
//
//	[serve]
//	addr          = ":8080"
//	read_timeout  = "5s"
//	write_timeout = "30s"
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is looked up in the working directory when no --config is given.
const FileName = "hyperpath.toml"

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved CLI configuration.
type Config struct {
	Engine Engine `toml:"engine"`
	Batch  Batch  `toml:"batch"`
	Serve  Serve  `toml:"serve"`
	Log    Log    `toml:"log"`
}

// Engine holds the options forwarded to the hyperpath and loading passes.
type Engine struct {
	Epsilon float64 `toml:"epsilon"`
	Prune   bool    `toml:"prune"`
}

// Batch configures `hyperpath batch`.
type Batch struct {
	Workers int `toml:"workers"`
}

// Serve configures `hyperpath serve`.
type Serve struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Duration decodes TOML strings such as "5s" via time.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: Engine{Epsilon: 1e-9},
		Batch:  Batch{Workers: 0},
		Serve: Serve{
			Addr:         ":8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path tries FileName in dir
// and falls back to the defaults when it does not exist.
func Load(dir, path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Engine.Epsilon < 0 {
		return fmt.Errorf("%w: engine.epsilon=%g", ErrInvalidConfig, c.Engine.Epsilon)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers=%d", ErrInvalidConfig, c.Batch.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}
