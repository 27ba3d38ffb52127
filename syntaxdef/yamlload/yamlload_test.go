// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosyn/syncore/synparse"
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

func TestLoadAndParse(t *testing.T) {
	def, err := Load(strings.NewReader(testSyntax))
	require.NoError(t, err)
	assert.Equal(t, "source.example", def.Scope.String())

	p := synparse.NewParseState(def.Graph)
	ops := p.ParseLine("mod end")
	require.Len(t, ops, 4)
	assert.Equal(t, synparse.OpPush, ops[0].Op.Kind)
	assert.Equal(t, synparse.OpPush, ops[1].Op.Kind)
}

func TestLoadRejectsMissingMain(t *testing.T) {
	_, err := Load(strings.NewReader("scope: x\ncontexts:\n  other: []\n"))
	assert.Error(t, err)
}

func TestLoadResolvesInclude(t *testing.T) {
	const src = `
scope: source.include-example
contexts:
  main:
    - include: shared
  shared:
    - match: 'x'
      scope: variable.example
`
	def, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	p := synparse.NewParseState(def.Graph)
	ops := p.ParseLine("x")
	require.Len(t, ops, 2)
	assert.Equal(t, synparse.OpPush, ops[0].Op.Kind)
	assert.Equal(t, synparse.OpPop, ops[1].Op.Kind)
}
