// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regexadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndSearch(t *testing.T) {
	re, err := Compile(`\w+`)
	require.NoError(t, err)

	regions, ok := Search(re, "  hello world", 0, len("  hello world"))
	require.True(t, ok)
	start, end, ok := regions.Pos(0)
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 7, end)
}

func TestCompileFailureIsNotFatal(t *testing.T) {
	_, err := Compile(`(unterminated`)
	assert.Error(t, err)
}

func TestSearchNoMatch(t *testing.T) {
	re, err := Compile(`zzz`)
	require.NoError(t, err)
	_, ok := Search(re, "hello", 0, len("hello"))
	assert.False(t, ok)
}

func TestCompileWithRefsSubstitutesCapture(t *testing.T) {
	marker, err := Compile(`<<-(\w+)`)
	require.NoError(t, err)
	line := "lol = <<-SQL.strip"
	regions, ok := Search(marker, line, 0, len(line))
	require.True(t, ok)

	re, err := CompileWithRefs(`^\1`, regions, line)
	require.NoError(t, err)

	closing := "SQL"
	closingRegions, ok := Search(re, closing, 0, len(closing))
	require.True(t, ok)
	start, end, ok := closingRegions.Pos(0)
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestRegionsPosOutOfRange(t *testing.T) {
	var r *Regions
	_, _, ok := r.Pos(0)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Count())
}
