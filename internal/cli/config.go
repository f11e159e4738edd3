// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrConfig is returned for an unreadable or invalid config file.
var ErrConfig = errors.New("cli: invalid config")

// Config is the optional TOML file read with --config.
//
//	log_level = "debug"
//
//	[sort]
//	algorithm = "quick"
//
//	[islands]
//	connectivity = 8
type Config struct {
	LogLevel string        `toml:"log_level"`
	Sort     SortConfig    `toml:"sort"`
	Islands  IslandsConfig `toml:"islands"`
}

// SortConfig sets the default sort algorithm.
type SortConfig struct {
	Algorithm string `toml:"algorithm"`
}

// IslandsConfig sets the default grid connectivity, 4 or 8.
type IslandsConfig struct {
	Connectivity int `toml:"connectivity"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Sort:     SortConfig{Algorithm: algoMerge},
		Islands:  IslandsConfig{Connectivity: 4},
	}
}

// loadConfig overlays the file at path on the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrConfig, undecoded[0].String())
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrConfig, c.LogLevel)
	}
	if _, ok := sorters[c.Sort.Algorithm]; !ok {
		return fmt.Errorf("%w: sort.algorithm %q", ErrConfig, c.Sort.Algorithm)
	}
	if c.Islands.Connectivity != 4 && c.Islands.Connectivity != 8 {
		return fmt.Errorf("%w: islands.connectivity %d", ErrConfig, c.Islands.Connectivity)
	}

	return nil
}

func (c Config) level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}
