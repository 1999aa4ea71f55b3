// Package config loads the scheduler's tunable constants from an optional
// TOML file, layered over the original kernel's own compiled-in defaults.
//
// The dispatch *policy* (RR/FCFS/PBS/MLFQ) is never a config key — it is
// selected at build time via Go build tags on internal/sched, the direct
// analogue of the original's #ifdef RR/FCFS/PBS/MLFQ, and config.Load does
// not touch it.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pixel-z/xv6-Modified/internal/common"
	"github.com/pixel-z/xv6-Modified/internal/logging"
)

// Config holds the tunables a teaching kernel plausibly wants to adjust
// without a rebuild. Zero value is NOT usable directly — call Defaults.
type Config struct {
	NProc           int    `toml:"nproc"`
	Age             int    `toml:"age"`
	DefaultPriority int    `toml:"default_priority"`
	QTicksMax       [5]int `toml:"q_ticks_max"`
}

// Defaults mirrors the constants baked into the original C kernel: NPROC=64,
// AGE=20, default priority 60, slice allotments {1,2,4,8,16}.
func Defaults() Config {
	return Config{
		NProc:           64,
		Age:             common.Age,
		DefaultPriority: common.DefaultPriority,
		QTicksMax:       common.QTicksMax,
	}
}

// Load reads path (if it exists) as TOML over Defaults. A missing file is
// not an error — it just means "use the defaults" — but a malformed file
// is, since a teaching kernel should fail loudly rather than boot with
// half-applied config.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Log.Debug().Str("path", path).Msg("config file absent, using defaults")
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	logging.Log.Info().Str("path", path).Interface("config", cfg).Msg("loaded config")
	return cfg, nil
}

func (c Config) validate() error {
	if c.NProc <= 0 {
		return fmt.Errorf("config: nproc must be positive, got %d", c.NProc)
	}
	if c.Age <= 0 {
		return fmt.Errorf("config: age must be positive, got %d", c.Age)
	}
	if c.DefaultPriority < common.MinPriority || c.DefaultPriority > common.MaxPriority {
		return fmt.Errorf("config: default_priority %d out of range [%d,%d]",
			c.DefaultPriority, common.MinPriority, common.MaxPriority)
	}
	for i, t := range c.QTicksMax {
		if t <= 0 {
			return fmt.Errorf("config: q_ticks_max[%d] must be positive, got %d", i, t)
		}
	}
	return nil
}
