// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/syntax"
)

func mustPush(pattern string, pushScope []scope.Scope, refs ...syntax.ContextRef) *syntax.MatchPattern {
	return &syntax.MatchPattern{RegexText: pattern, Scope: pushScope, Operation: syntax.Push, ContextRefs: refs}
}

func entry(p *syntax.MatchPattern) syntax.PatternOrInclude { return syntax.PatternOrInclude{Pattern: p} }

// TestNestedPushPop exercises the ordinary case: a context pushed by a
// literal keyword, carrying its own meta scope, later popped by a second
// keyword inside it.
func TestNestedPushPop(t *testing.T) {
	keyword := scope.New("keyword.control.test")
	blockMeta := scope.New("meta.block.test")
	endKeyword := scope.New("keyword.control.end.test")

	g := syntax.NewGraph()
	blockRef := g.Reserve("block")
	g.Define(blockRef, &syntax.Context{
		Name:      "block",
		MetaScope: []scope.Scope{blockMeta},
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText: "end",
			Scope:     []scope.Scope{endKeyword},
			Operation: syntax.Pop,
		})},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name:     syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(mustPush("mod", []scope.Scope{keyword}, blockRef))},
	})

	p := NewParseState(g)
	ops := p.ParseLine("mod xxx end")

	want := []Emitted{
		{0, pushOp(blockMeta)},
		{0, pushOp(keyword)},
		{3, popOp(1)},
		{8, pushOp(endKeyword)},
		{11, popOp(1)},
		{11, popOp(1)},
	}
	assert.Equal(t, want, ops)
}

// TestHeredocBackref reproduces the back-reference scenario: a context
// pushed with a captured terminator is only popped on the third line, when
// that exact text recurs, with the middle line producing no ops.
func TestHeredocBackref(t *testing.T) {
	hereScope := scope.New("string.unquoted.heredoc")

	g := syntax.NewGraph()
	hereRef := g.Reserve("heredoc")
	g.Define(hereRef, &syntax.Context{
		Name:         "heredoc",
		MetaScope:    []scope.Scope{hereScope},
		UsesBackrefs: true,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   `\1`,
			HasCaptures: true,
			Operation:   syntax.Pop,
		})},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText: `<<-(\w+)`,
			Operation: syntax.Push,
			ContextRefs: []syntax.ContextRef{hereRef},
		})},
	})

	p := NewParseState(g)

	line1 := "lol = <<-SQL.strip"
	ops1 := p.ParseLine(line1)
	require.Equal(t, []Emitted{{6, pushOp(hereScope)}}, ops1)

	ops2 := p.ParseLine("wow")
	assert.Empty(t, ops2)

	ops3 := p.ParseLine("SQL")
	assert.Equal(t, []Emitted{{3, popOp(1)}}, ops3)
}

// TestLoopingPopDisplacedByConsumingMatch reproduces the "non-consuming
// push + non-consuming pop" scenario: the pushed context's own
// non-consuming pop would loop at the same position and depth the previous step's
// non-consuming push reached, but a same-position consuming match in the
// same context displaces it, and the looping candidate never wins.
func TestLoopingPopDisplacedByConsumingMatch(t *testing.T) {
	matched := scope.New("test.matched")

	g := syntax.NewGraph()
	testRef := g.Reserve("test")
	g.Define(testRef, &syntax.Context{
		Name: "test",
		Patterns: []syntax.PatternOrInclude{
			entry(&syntax.MatchPattern{RegexText: `(?!world)`, Operation: syntax.Pop}),
			entry(&syntax.MatchPattern{RegexText: `\w+`, Scope: []scope.Scope{matched}, Operation: syntax.None}),
		},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   `(?=hello)`,
			Operation:   syntax.Push,
			ContextRefs: []syntax.ContextRef{testRef},
		})},
	})

	p := NewParseState(g)
	ops := p.ParseLine("hello")

	assert.Equal(t, []Emitted{
		{0, pushOp(matched)},
		{5, popOp(1)},
	}, ops)
}

// TestPrototypePopYieldsToMainMatch reproduces the "infinite-seeming
// loop" scenario: a prototype's non-consuming pop sits later in the line
// than the owning context's own match, so the own-context match must
// still win via the smallest-start-offset rule, and the prototype's pop
// (consulted first in visit order) never preempts it.
func TestPrototypePopYieldsToMainMatch(t *testing.T) {
	good := scope.New("test.good")

	g := syntax.NewGraph()
	protoRef := g.Reserve("proto")
	g.Define(protoRef, &syntax.Context{
		Name:     "proto",
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{RegexText: `(?=!)`, Operation: syntax.Pop})},
	})
	mainRef := g.Reserve("main")
	g.Define(mainRef, &syntax.Context{
		Name:      "main",
		Prototype: protoRef,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText: "foo",
			Scope:     []scope.Scope{good},
			Operation: syntax.None,
		})},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   "^",
			Operation:   syntax.Push,
			ContextRefs: []syntax.ContextRef{mainRef},
		})},
	})

	p := NewParseState(g)
	ops := p.ParseLine("foo!")

	assert.Equal(t, []Emitted{
		{0, pushOp(good)},
		{3, popOp(1)},
	}, ops)
}

// TestSetVsPushClearScopeTiming reproduces the divergence between Push
// and Set: a Push target's clear_scopes is emitted before the matched
// token, a Set target's after.
func TestSetVsPushClearScopeTiming(t *testing.T) {
	pushMeta := scope.New("meta.pushed.test")
	setMeta := scope.New("meta.set.test")

	g := syntax.NewGraph()
	pushTargetRef := g.Add("pushTarget", &syntax.Context{
		Name:        "pushTarget",
		MetaScope:   []scope.Scope{pushMeta},
		ClearScopes: &syntax.ClearAmount{Count: 1},
	})
	setTargetRef := g.Add("setTarget", &syntax.Context{
		Name:        "setTarget",
		MetaScope:   []scope.Scope{setMeta},
		ClearScopes: &syntax.ClearAmount{Count: 1},
	})
	levelRef := g.Add("level", &syntax.Context{
		Name: "level",
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   "setme",
			Operation:   syntax.Set,
			ContextRefs: []syntax.ContextRef{setTargetRef},
		})},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{
			entry(mustPush("pushme", nil, pushTargetRef)),
			entry(&syntax.MatchPattern{
				RegexText:   "enter",
				Operation:   syntax.Push,
				ContextRefs: []syntax.ContextRef{levelRef},
			}),
		},
	})

	pushOps := NewParseState(g).ParseLine("pushme")
	assert.Equal(t, []Emitted{
		{0, clearOp(syntax.ClearAmount{Count: 1})},
		{0, pushOp(pushMeta)},
	}, pushOps)

	setOps := NewParseState(g).ParseLine("enter setme")
	assert.Equal(t, []Emitted{
		{6, pushOp(setMeta)},
		{11, popOp(1)},
		{11, clearOp(syntax.ClearAmount{Count: 1})},
		{11, pushOp(setMeta)},
	}, setOps)
}

// TestCaptureOrdering reproduces the nested-repeated-group scenario: a
// pattern whose capture groups can match in varying declared order still
// emits outer-before-inner pushes and end-ordered, pop-before-push pops.
func TestCaptureOrdering(t *testing.T) {
	outer := scope.New("outer")
	bob := scope.New("bob")
	hi := scope.New("hi")

	g := syntax.NewGraph()
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText: `((bob)|(hi))*`,
			Operation: syntax.None,
			Captures: []syntax.Capture{
				{Index: 1, Scopes: []scope.Scope{outer}},
				{Index: 2, Scopes: []scope.Scope{bob}},
				{Index: 3, Scopes: []scope.Scope{hi}},
			},
		})},
	})

	p := NewParseState(g)
	ops := p.ParseLine("hibob")

	assert.Equal(t, []Emitted{
		{0, pushOp(hi)},
		{2, popOp(1)},
		{2, pushOp(outer)},
		{2, pushOp(bob)},
		{5, popOp(1)},
		{5, popOp(1)},
	}, ops)
}

// TestCloneThenParseMatchesParseThenClone checks the documented property:
// cloning a session and then parsing a line produces output identical to
// parsing that same line on the original, even when the stack carries a
// back-reference capture snapshot.
func TestCloneThenParseMatchesParseThenClone(t *testing.T) {
	g := syntax.NewGraph()
	hereRef := g.Reserve("heredoc")
	g.Define(hereRef, &syntax.Context{
		Name:         "heredoc",
		UsesBackrefs: true,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   `\1`,
			HasCaptures: true,
			Operation:   syntax.Pop,
		})},
	})
	g.Add(syntax.StartContextName, &syntax.Context{
		Name: syntax.StartContextName,
		Patterns: []syntax.PatternOrInclude{entry(&syntax.MatchPattern{
			RegexText:   `<<-(\w+)`,
			Operation:   syntax.Push,
			ContextRefs: []syntax.ContextRef{hereRef},
		})},
	})

	original := NewParseState(g)
	original.ParseLine("lol = <<-SQL.strip")

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	originalOps := original.ParseLine("SQL")
	cloneOps := clone.ParseLine("SQL")

	assert.Equal(t, originalOps, cloneOps)
	assert.True(t, original.Equal(clone))
}
