// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// StartContextName is the synthetic context every ParseState begins its
// stack with, by convention with the on-disk format's own "__start" entry.
const StartContextName = "__start"

// Graph is an arena of Contexts addressed by stable index, letting
// mutually- and self-referential context definitions (via `include` or
// direct recursion) exist without requiring a garbage-collected cyclic
// pointer structure to be built up front. ContextRef values are indices
// into a Graph and are only meaningful relative to the Graph that
// produced them.
type Graph struct {
	contexts []*Context
	byName   map[string]ContextRef
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]ContextRef)}
}

// ContextRef is a late-bindable handle to a Context, resolved against the
// Graph that allocated it. The zero ContextRef is invalid; use Reserve to
// obtain one before the Context it names is fully built, to support
// mutually recursive definitions.
type ContextRef struct {
	idx int // 1-based; 0 means "unset"
}

// Valid reports whether r refers to a real Context.
func (r ContextRef) Valid() bool { return r.idx != 0 }

// Reserve allocates a named slot for a Context that will be filled in
// later via Define, returning a ContextRef other contexts can already
// refer to. Calling Reserve again with the same name returns the existing
// ref.
func (g *Graph) Reserve(name string) ContextRef {
	if ref, ok := g.byName[name]; ok {
		return ref
	}
	g.contexts = append(g.contexts, nil)
	ref := ContextRef{idx: len(g.contexts)}
	g.byName[name] = ref
	return ref
}

// Define installs ctx as the Context for ref, which must have come from
// Reserve (or Add) on the same Graph.
func (g *Graph) Define(ref ContextRef, ctx *Context) {
	g.contexts[ref.idx-1] = ctx
}

// Add reserves a ref for name, defines it as ctx, and returns the ref in
// one step, for contexts with no forward references to resolve.
func (g *Graph) Add(name string, ctx *Context) ContextRef {
	ref := g.Reserve(name)
	g.Define(ref, ctx)
	return ref
}

// Resolve returns the Context a ref points to. It panics if ref is zero or
// was never Defined, which indicates a malformed graph (a bug in the
// loader, not a condition callers of synparse need to handle).
func (g *Graph) Resolve(ref ContextRef) *Context {
	if !ref.Valid() {
		panic("syntax: resolving an invalid ContextRef")
	}
	ctx := g.contexts[ref.idx-1]
	if ctx == nil {
		panic("syntax: ContextRef reserved but never defined")
	}
	return ctx
}

// RefByName looks up a previously Reserved or Added context by name.
func (g *Graph) RefByName(name string) (ContextRef, bool) {
	ref, ok := g.byName[name]
	return ref, ok
}

// Start returns the ref for the synthetic start context, panicking if the
// graph has none — every syntax definition must provide one.
func (g *Graph) Start() ContextRef {
	ref, ok := g.RefByName(StartContextName)
	if !ok {
		panic("syntax: graph has no " + StartContextName + " context")
	}
	return ref
}
