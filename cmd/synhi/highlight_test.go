// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSyntax = `
scope: source.example
contexts:
  main:
    - match: 'mod'
      scope: keyword.control.example
      push: block
  block:
    - meta_scope: meta.block.example
    - match: 'end'
      pop: true
`

func TestRunHighlightEndToEnd(t *testing.T) {
	dir := t.TempDir()
	syntaxPath := filepath.Join(dir, "example.sublime-syntax")
	sourcePath := filepath.Join(dir, "example.src")

	require.NoError(t, os.WriteFile(syntaxPath, []byte(testSyntax), 0o644))
	require.NoError(t, os.WriteFile(sourcePath, []byte("mod\nend\n"), 0o644))

	require.NoError(t, runHighlight(syntaxPath, sourcePath))
}

func TestLoadSyntaxMissingFile(t *testing.T) {
	_, err := loadSyntax(filepath.Join(t.TempDir(), "missing.sublime-syntax"))
	require.Error(t, err)
}
