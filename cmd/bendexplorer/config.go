package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/buffer/history"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable editor settings, loaded from
// ~/.bendexplorer/config.yaml. Missing file means defaults; a broken
// file means defaults plus a warning, never a refusal to start.
type Config struct {
	// BytesPerRow is the width of the hex grid.
	BytesPerRow int `yaml:"bytes_per_row"`

	// UppercaseHex renders hex digits as A-F instead of a-f.
	UppercaseHex bool `yaml:"uppercase_hex"`

	// HistoryLimit caps the undo stack. Zero selects the engine default.
	HistoryLimit int `yaml:"history_limit"`

	// CoalesceWindowMS is the gap in milliseconds within which
	// consecutive single-byte edits merge into one undo entry.
	// Zero selects the engine default.
	CoalesceWindowMS int `yaml:"coalesce_window_ms"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		BytesPerRow: 16,
	}
}

// LoadConfig reads the user config file. A missing file is not an
// error. On a parse error the defaults are returned alongside the
// error so the caller can warn and continue.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(filepath.Join(home, ".bendexplorer", "config.yaml"))
}

func loadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsense values back to usable ones.
func (c *Config) normalize() {
	if c.BytesPerRow < 1 {
		c.BytesPerRow = 16
	}
	if c.BytesPerRow > 64 {
		c.BytesPerRow = 64
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.CoalesceWindowMS < 0 {
		c.CoalesceWindowMS = 0
	}
}

// bufferOptions translates the config into engine options.
func (c Config) bufferOptions() buffer.Options {
	return buffer.Options{
		History: history.Options{
			MaxEntries:     c.HistoryLimit,
			CoalesceWindow: time.Duration(c.CoalesceWindowMS) * time.Millisecond,
		},
	}
}
