// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synparse is the incremental match-selection state machine: given
// a syntax.Graph and a file presented line by line, it maintains a context
// stack and emits, per line, the ordered sequence of ScopeStackOps a
// caller applies to evolve its own scope stack.
//
// ParseState owns all of the mutable state for one parse session. Loading
// the syntax.Graph from an on-disk format, applying the emitted ops to
// build a rendered scope stack, and the regex engine itself are all
// external collaborators — see syntaxdef/yamlload, scopestack, and
// regexadapter respectively.
package synparse

import (
	"github.com/gosyn/syncore/regexadapter"
	"github.com/gosyn/syncore/syntax"
)

// ParseState keeps the context stack between lines of one parse session.
// Create one with NewParseState at the start of a file and call ParseLine
// once per line, in order, to the end.
type ParseState struct {
	graph       *syntax.Graph
	stack       []stateFrame
	firstLine   bool
	protoStarts []int
}

// stateFrame is one level of the context stack.
type stateFrame struct {
	context   syntax.ContextRef
	prototype syntax.ContextRef // invalid (zero) if this frame has none
	captures  *captureSnapshot  // nil unless the pushed context uses backrefs
}

// captureSnapshot is the regions and source line of the match that pushed
// a frame, retained so later lines' patterns that reference a backref can
// substitute it even though the line that produced the capture is long
// gone.
type captureSnapshot struct {
	regions *regexadapter.Regions
	line    string
}

func (a *captureSnapshot) equal(b *captureSnapshot) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.line != b.line {
		return false
	}
	if a.regions.Count() != b.regions.Count() {
		return false
	}
	for i := 0; i < a.regions.Count(); i++ {
		as, ae, aok := a.regions.Pos(i)
		bs, be, bok := b.regions.Pos(i)
		if aok != bok || as != bs || ae != be {
			return false
		}
	}
	return true
}

// frameEqual compares two frames the way the core spec requires:
// reference/index identity for the contexts (they form cycles, so
// structural comparison is meaningless), structural equality for
// captures.
func frameEqual(a, b stateFrame) bool {
	return a.context == b.context && a.prototype == b.prototype && a.captures.equal(b.captures)
}

// NewParseState creates a session rooted at graph's synthetic start
// context.
func NewParseState(graph *syntax.Graph) *ParseState {
	return &ParseState{
		graph:     graph,
		stack:     []stateFrame{{context: graph.Start()}},
		firstLine: true,
	}
}

// Clone returns a deep-enough copy of p: an independent stack and
// proto-starts slice, with capture snapshots duplicated (see
// captureSnapshot.clone), such that parsing subsequent lines on the clone
// never mutates p and vice versa. Context references are shared, since
// the syntax graph is immutable input.
func (p *ParseState) Clone() *ParseState {
	clone := &ParseState{
		graph:       p.graph,
		stack:       make([]stateFrame, len(p.stack)),
		firstLine:   p.firstLine,
		protoStarts: append([]int(nil), p.protoStarts...),
	}
	for i, f := range p.stack {
		clone.stack[i] = stateFrame{
			context:   f.context,
			prototype: f.prototype,
			captures:  f.captures.clone(),
		}
	}
	return clone
}

// Equal reports whether p and other have identical stacks (by the same
// reference/structural rules frameEqual uses), the same first-line state,
// and the same proto-starts. It does not compare the underlying graph
// pointer identity beyond what ContextRef equality already implies.
func (p *ParseState) Equal(other *ParseState) bool {
	if p.firstLine != other.firstLine {
		return false
	}
	if len(p.stack) != len(other.stack) {
		return false
	}
	for i := range p.stack {
		if !frameEqual(p.stack[i], other.stack[i]) {
			return false
		}
	}
	if len(p.protoStarts) != len(other.protoStarts) {
		return false
	}
	for i := range p.protoStarts {
		if p.protoStarts[i] != other.protoStarts[i] {
			return false
		}
	}
	return true
}
