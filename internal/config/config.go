// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the CLI-facing configuration for synhi: which
// syntax file to load, how large to start the search cache, and how
// verbosely to log, read from a small TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"

	"github.com/gosyn/syncore/internal/logx"
)

// Config is the full set of settings synhi reads from its TOML file.
type Config struct {

	// Syntax is the path to the .sublime-syntax-shaped YAML file to load.
	Syntax string `toml:"syntax"`

	// CacheCapacity is the configured starting size of the per-line search
	// cache (§9's performance note suggests 128 for typical lines). It is
	// read and merged but not passed on: synparse always starts its cache
	// at 128 slots.
	CacheCapacity int `toml:"cache_capacity"`

	// LogLevel is one of "debug", "info", "warn", or "error". synhi does
	// not apply it; its log level comes from the -d/-v/-q flags.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration synhi runs with when no file is
// found or given.
func Default() Config {
	return Config{
		CacheCapacity: 128,
		LogLevel:      "warn",
	}
}

// Load reads and decodes the TOML file at path, layering it over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fromFile Config
	if err := toml.Unmarshal(b, &fromFile); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// copier.CopyWithOption skips the file's zero-value fields, so a
	// config that only sets "syntax" still inherits the cache/log
	// defaults instead of zeroing them out.
	if err := copier.CopyWithOption(&cfg, &fromFile, copier.Option{IgnoreEmpty: true}); err != nil {
		return Config{}, fmt.Errorf("config: merge %s: %w", path, err)
	}
	return cfg, nil
}

// LogLevelValue parses LogLevel into an logx.Level, defaulting to
// logx.Warn for an empty or unrecognized value.
func (c Config) LogLevelValue() logx.Level {
	switch c.LogLevel {
	case "debug":
		return logx.Debug
	case "info":
		return logx.Info
	case "error":
		return logx.Error
	case "warn", "":
		return logx.Warn
	default:
		return logx.Warn
	}
}
