// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopestack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/synparse"
	"github.com/gosyn/syncore/syntax"
)

func TestApplyPushPop(t *testing.T) {
	a := scope.New("a")
	b := scope.New("b")

	s := New()
	s.ApplyAll([]synparse.Emitted{
		{0, synparse.ScopeStackOp{Kind: synparse.OpPush, Scope: a}},
		{0, synparse.ScopeStackOp{Kind: synparse.OpPush, Scope: b}},
		{5, synparse.ScopeStackOp{Kind: synparse.OpPop, N: 1}},
	})

	require.Equal(t, []scope.Scope{a}, s.Scopes())
}

func TestApplyClearRestore(t *testing.T) {
	a := scope.New("a")
	b := scope.New("b")

	s := New()
	s.Apply(synparse.ScopeStackOp{Kind: synparse.OpPush, Scope: a})
	s.Apply(synparse.ScopeStackOp{Kind: synparse.OpPush, Scope: b})
	s.Apply(synparse.ScopeStackOp{Kind: synparse.OpClear, Clear: syntax.ClearAmount{Count: 1}})
	assert.Equal(t, []scope.Scope{a}, s.Scopes())

	s.Apply(synparse.ScopeStackOp{Kind: synparse.OpRestore})
	assert.Equal(t, []scope.Scope{a, b}, s.Scopes())
}

func TestDebugOps(t *testing.T) {
	out := DebugOps([]synparse.Emitted{
		{0, synparse.ScopeStackOp{Kind: synparse.OpPush, Scope: scope.New("a")}},
	})
	assert.True(t, strings.Contains(out, "Push(a)"))
}
