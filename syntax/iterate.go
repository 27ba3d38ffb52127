// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// PatternRef identifies one MatchPattern reachable from a context,
// possibly by way of one or more `include:` directives. OwnerRef is the
// context that physically declares the pattern (what synparse's selector
// calls the "pattern context", distinct from the context being visited),
// and Index is the pattern's position within OwnerRef's own Patterns
// slice.
type PatternRef struct {
	OwnerRef ContextRef
	Index    int
}

// Iterate walks ctxRef's patterns in declaration order, recursively
// flattening any `include:` directives (including recursive includes of a
// context that is itself on the current stack, guarded against infinite
// recursion via the visited set), and calls visit for each concrete match
// pattern reached. This is the core spec's "flat iterator yielding
// (owning_context, pattern_index) pairs". visit returns false to stop the
// walk early (used by synparse's match selector once an unbeatable match
// has been found); Iterate then returns false itself.
func (g *Graph) Iterate(ctxRef ContextRef, visit func(PatternRef) bool) bool {
	return g.iterate(ctxRef, visit, make(map[ContextRef]bool))
}

func (g *Graph) iterate(ctxRef ContextRef, visit func(PatternRef) bool, visited map[ContextRef]bool) bool {
	if visited[ctxRef] {
		return true
	}
	visited[ctxRef] = true
	defer delete(visited, ctxRef)
	ctx := g.Resolve(ctxRef)
	for i, entry := range ctx.Patterns {
		if entry.IsInclude() {
			if !g.iterate(entry.Include, visit, visited) {
				return false
			}
			continue
		}
		if !visit(PatternRef{OwnerRef: ctxRef, Index: i}) {
			return false
		}
	}
	return true
}

// PatternAt returns the MatchPattern a PatternRef addresses.
func (g *Graph) PatternAt(ref PatternRef) *MatchPattern {
	return g.Resolve(ref.OwnerRef).Patterns[ref.Index].Pattern
}
