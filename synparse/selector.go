// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import (
	"github.com/gosyn/syncore/regexadapter"
	"github.com/gosyn/syncore/syntax"
)

// regexMatch is a winning candidate from findBestMatch.
type regexMatch struct {
	regions           *regexadapter.Regions
	ownerCtx          syntax.ContextRef // context that physically owns the matched pattern
	patIndex          int
	fromWithPrototype bool
	wouldLoop         bool
}

// chainEntry is one context visited by findBestMatch, in visit order.
type chainEntry struct {
	fromWithPrototype bool
	ctxRef            syntax.ContextRef
	captures          *captureSnapshot
}

// visitChain builds the ordered list of contexts findBestMatch consults,
// per the core spec's §4.2 visit order:
//  1. with_prototype frames inherited from below, deepest valid index
//     upward;
//  2. the current top context's own prototype, if any;
//  3. the current top context itself.
func (p *ParseState) visitChain() []chainEntry {
	top := p.stack[len(p.stack)-1]
	topCtx := p.graph.Resolve(top.context)

	protoStart := 0
	if n := len(p.protoStarts); n > 0 {
		protoStart = p.protoStarts[n-1]
	}

	var chain []chainEntry
	for i := protoStart; i < len(p.stack); i++ {
		frame := p.stack[i]
		if frame.prototype.Valid() {
			chain = append(chain, chainEntry{fromWithPrototype: true, ctxRef: frame.prototype, captures: frame.captures})
		}
	}
	if topCtx.Prototype.Valid() {
		chain = append(chain, chainEntry{ctxRef: topCtx.Prototype})
	}
	chain = append(chain, chainEntry{ctxRef: top.context, captures: top.captures})
	return chain
}

// findBestMatch finds the earliest-starting match across the visit
// chain, breaking ties by declaration order except that a looping pop
// candidate is displaced by any later non-looping candidate at the same
// start offset (core spec §4.2).
func (p *ParseState) findBestMatch(line string, start int, cache *searchCache, checkPopLoop bool) *regexMatch {
	minStart := -1
	var best *regexMatch
	popWouldLoop := false

	for _, entry := range p.visitChain() {
		stop := false
		p.graph.Iterate(entry.ctxRef, func(ref syntax.PatternRef) bool {
			pat := p.graph.PatternAt(ref)
			regions, ok := cache.search(line, start, pat, entry.captures)
			if !ok {
				return true
			}
			matchStart, matchEnd, _ := regions.Pos(0)

			if minStart != -1 && matchStart > minStart {
				return true
			}
			if minStart != -1 && matchStart == minStart && !popWouldLoop {
				return true
			}

			minStart = matchStart
			consuming := matchEnd > start
			wouldLoop := checkPopLoop && !consuming && pat.Operation == syntax.Pop
			popWouldLoop = wouldLoop

			best = &regexMatch{
				regions:           regions,
				ownerCtx:          ref.OwnerRef,
				patIndex:          ref.Index,
				fromWithPrototype: entry.fromWithPrototype,
				wouldLoop:         wouldLoop,
			}

			if matchStart == start && !wouldLoop {
				// No later candidate can beat an exact-position,
				// non-looping match.
				stop = true
				return false
			}
			return true
		})
		if stop {
			break
		}
	}
	return best
}
