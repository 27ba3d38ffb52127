// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import "github.com/gosyn/syncore/syntax"

// ParseLine advances the session by one logical line (no embedded
// newline required) and returns the ordered (byte_offset, ScopeStackOp)
// sequence produced, per the core spec's §4.1. Offsets are non-decreasing
// and relative to the start of line. Calls must present lines in file
// order; ParseLine mutates the session's stack in place.
func (p *ParseState) ParseLine(line string) []Emitted {
	var out []Emitted

	if p.firstLine {
		p.firstLine = false
		bottom := p.graph.Resolve(p.stack[0].context)
		if len(bottom.MetaContentScope) > 0 {
			out = append(out, Emitted{0, pushOp(bottom.MetaContentScope[0])})
		}
	}

	start := 0
	loopGuardPos, loopGuardDepth := 0, 0
	cache := newSearchCache()

	for {
		checkPopLoop := loopGuardPos == start && loopGuardDepth == len(p.stack)
		match := p.findBestMatch(line, start, cache, checkPopLoop)
		if match == nil {
			break
		}

		_, matchEnd, _ := match.regions.Pos(0)

		if match.wouldLoop {
			if start >= len(line) {
				break
			}
			start++
			continue
		}

		pat := p.graph.PatternAt(syntax.PatternRef{OwnerRef: match.ownerCtx, Index: match.patIndex})
		nonConsuming := matchEnd == start
		depthBeforePush := len(p.stack)
		levelCtx := p.stack[len(p.stack)-1].context

		p.execPattern(line, match, levelCtx, &out)

		if nonConsuming && pat.Operation == syntax.Push {
			loopGuardPos = matchEnd
			loopGuardDepth = depthBeforePush + 1
		}

		start = matchEnd
	}

	return out
}
