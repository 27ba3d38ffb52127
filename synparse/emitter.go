// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import (
	"sort"

	"github.com/gosyn/syncore/syntax"
)

// captureRecord is a capture-scope op awaiting the final stable sort by
// (position, tiebreak) the core spec's §4.5 step 3 requires.
type captureRecord struct {
	pos     int
	tiebrk  int
	op      ScopeStackOp
}

// execPattern translates a winning match into the ordered ops it produces
// (core spec §4.5) and then mutates the stack via performOp. levelCtx is
// the context at the top of the stack *before* this match's mutation —
// not necessarily match.ownerCtx, which may be a prototype or an included
// context.
func (p *ParseState) execPattern(line string, match *regexMatch, levelCtx syntax.ContextRef, out *[]Emitted) {
	pat := p.graph.PatternAt(syntax.PatternRef{OwnerRef: match.ownerCtx, Index: match.patIndex})
	level := p.graph.Resolve(levelCtx)
	matchStart, matchEnd, _ := match.regions.Pos(0)

	p.pushMetaOps(true, matchStart, level, pat.Operation, pat.ContextRefs, out)

	for _, s := range pat.Scope {
		*out = append(*out, Emitted{matchStart, pushOp(s)})
	}

	if len(pat.Captures) > 0 {
		emitCaptureOps(match, pat, out)
	}

	if len(pat.Scope) > 0 {
		*out = append(*out, Emitted{matchEnd, popOp(len(pat.Scope))})
	}

	p.pushMetaOps(false, matchEnd, level, pat.Operation, pat.ContextRefs, out)

	p.performOp(line, match, pat)
}

// emitCaptureOps appends the capture-scope ops for pat's capture map,
// sorted by (start, -(length)) for pushes and (end, INT_MIN) for pops, so
// that nested captures matching in an arbitrary declaration order (e.g.
// "((bob)|(hi))*" matching "hibob") still produce a balanced, correctly
// nested op sequence.
func emitCaptureOps(match *regexMatch, pat *syntax.MatchPattern, out *[]Emitted) {
	const popTiebreak = -1 << 31 // INT_MIN: pops at a given end sort before any push there.

	var records []captureRecord
	for _, cap := range pat.Captures {
		start, end, ok := match.regions.Pos(cap.Index)
		if !ok || start == end {
			// Marking up empty captures causes pops to be sorted wrong.
			continue
		}
		length := end - start
		for _, s := range cap.Scopes {
			records = append(records, captureRecord{pos: start, tiebrk: -length, op: pushOp(s)})
		}
		records = append(records, captureRecord{pos: end, tiebrk: popTiebreak, op: popOp(len(cap.Scopes))})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].pos != records[j].pos {
			return records[i].pos < records[j].pos
		}
		return records[i].tiebrk < records[j].tiebrk
	})

	for _, r := range records {
		*out = append(*out, Emitted{r.pos, r.op})
	}
}

// pushMetaOps emits the meta-scope ops around a match, per the core
// spec's §4.5 step 1/5: Pop's meta_content_scope on entry and meta_scope
// on exit (plus Restore if clear_scopes was set); Push's target
// meta_scopes on entry only; and Set's deliberately different
// before/after behavior (repush logic), because Set keeps the previous
// context's meta scopes around the matched token unlike Pop or Push.
func (p *ParseState) pushMetaOps(initial bool, index int, level *syntax.Context, op syntax.Operation, refs []syntax.ContextRef, out *[]Emitted) {
	switch op {
	case syntax.Pop:
		v := level.MetaScope
		if initial {
			v = level.MetaContentScope
		}
		if len(v) > 0 {
			*out = append(*out, Emitted{index, popOp(len(v))})
		}
		if !initial && level.ClearScopes != nil {
			*out = append(*out, Emitted{index, restoreOp()})
		}

	case syntax.Push, syntax.Set:
		isSet := op == syntax.Set
		if initial {
			for _, r := range refs {
				ctx := p.graph.Resolve(r)
				if !isSet {
					if ctx.ClearScopes != nil {
						*out = append(*out, Emitted{index, clearOp(*ctx.ClearScopes)})
					}
				}
				for _, s := range ctx.MetaScope {
					*out = append(*out, Emitted{index, pushOp(s)})
				}
			}
			return
		}

		if !isSet {
			// Push's meta scopes were already pushed at the start; nothing
			// trails.
			return
		}

		repush := len(level.MetaScope) > 0 || len(level.MetaContentScope) > 0
		if !repush {
			for _, r := range refs {
				ctx := p.graph.Resolve(r)
				if len(ctx.MetaContentScope) > 0 || ctx.ClearScopes != nil {
					repush = true
					break
				}
			}
		}
		if !repush {
			return
		}

		numToPop := len(level.MetaContentScope) + len(level.MetaScope)
		for _, r := range refs {
			numToPop += len(p.graph.Resolve(r).MetaScope)
		}
		if numToPop > 0 {
			*out = append(*out, Emitted{index, popOp(numToPop)})
		}

		for _, r := range refs {
			ctx := p.graph.Resolve(r)
			if ctx.ClearScopes != nil {
				*out = append(*out, Emitted{index, clearOp(*ctx.ClearScopes)})
			}
			for _, s := range ctx.MetaScope {
				*out = append(*out, Emitted{index, pushOp(s)})
			}
			for _, s := range ctx.MetaContentScope {
				*out = append(*out, Emitted{index, pushOp(s)})
			}
		}

	case syntax.None:
		// No ops.
	}
}
