// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosyn/syncore/internal/logx"
)

func TestLoadMergesOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synhi.toml")
	require.NoError(t, os.WriteFile(path, []byte("syntax = \"example.sublime-syntax\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example.sublime-syntax", cfg.Syntax)
	assert.Equal(t, 128, cfg.CacheCapacity)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadOverridesCacheCapacity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synhi.toml")
	require.NoError(t, os.WriteFile(path, []byte("cache_capacity = 512\nlog_level = \"debug\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.CacheCapacity)
	assert.Equal(t, logx.Debug, cfg.LogLevelValue())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLogLevelValueDefault(t *testing.T) {
	assert.Equal(t, logx.Warn, Config{}.LogLevelValue())
	assert.Equal(t, logx.Warn, Config{LogLevel: "bogus"}.LogLevelValue())
}
