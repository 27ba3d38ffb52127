// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import "github.com/gosyn/syncore/syntax"

// performOp applies a winning match's operation to the stack, per the
// core spec's §4.6. It runs after execPattern has already computed and
// appended the op sequence for this match; it never itself appends to
// the op list.
func (p *ParseState) performOp(line string, match *regexMatch, pat *syntax.MatchPattern) {
	switch pat.Operation {
	case syntax.None:
		// No change.

	case syntax.Pop:
		p.popFrame()

	case syntax.Set:
		p.popFrame()
		p.pushRefs(pat.ContextRefs, pat.WithPrototype, match, line)

	case syntax.Push:
		p.pushRefs(pat.ContextRefs, pat.WithPrototype, match, line)
	}

	p.trimProtoStarts()
}

// popFrame pops one frame unless it is the floor frame, which is kept as
// the invariant in §3 requires the stack to never go empty.
func (p *ParseState) popFrame() {
	if len(p.stack) > 1 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// pushRefs pushes one frame per ref in order, attaching withProto only to
// the last (core spec §4.6's "per-push frame construction"), and, if this
// was a with_prototype-inherited match, records the pre-push depth into
// proto_starts so inherited prototypes below it stop applying above it.
func (p *ParseState) pushRefs(refs []syntax.ContextRef, withProto syntax.ContextRef, match *regexMatch, line string) {
	if len(refs) == 0 {
		return
	}
	depthBeforePush := len(p.stack)

	for i, ref := range refs {
		ctx := p.graph.Resolve(ref)
		isLast := i == len(refs)-1
		usesBackrefs := ctx.UsesBackrefs
		if isLast && withProto.Valid() {
			usesBackrefs = usesBackrefs || p.graph.Resolve(withProto).UsesBackrefs
		}

		var snap *captureSnapshot
		if usesBackrefs {
			snap = &captureSnapshot{regions: match.regions, line: line}
		}

		frame := stateFrame{context: ref, captures: snap}
		if isLast {
			frame.prototype = withProto
		}
		p.stack = append(p.stack, frame)
	}

	if match.fromWithPrototype {
		p.protoStarts = append(p.protoStarts, depthBeforePush)
	}
}

// trimProtoStarts drops any recorded depth that is no longer strictly
// less than the current stack length, per the §3 invariant that
// proto_starts entries are always ≤ current stack length.
func (p *ParseState) trimProtoStarts() {
	n := len(p.stack)
	for len(p.protoStarts) > 0 && p.protoStarts[len(p.protoStarts)-1] >= n {
		p.protoStarts = p.protoStarts[:len(p.protoStarts)-1]
	}
}
