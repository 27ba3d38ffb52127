// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax is the in-memory, read-only representation of a compiled
// syntax definition: a graph of Contexts holding ordered MatchPatterns,
// meta scopes, and stack operations. It is the input the synparse package
// consumes; loading this graph from an on-disk format (e.g. a
// .sublime-syntax YAML file, see syntaxdef/yamlload) is an external
// concern this package does not address.
package syntax

import (
	"sync"

	"github.com/gosyn/syncore/scope"
)

// Operation is the stack action a MatchPattern's match triggers.
type Operation int

const (
	// None leaves the context stack unchanged.
	None Operation = iota
	// Push pushes the referenced contexts, in order, on top of the stack.
	Push
	// Set pops the current frame, then pushes the referenced contexts.
	Set
	// Pop removes the top frame from the stack.
	Pop
)

func (o Operation) String() string {
	switch o {
	case None:
		return "None"
	case Push:
		return "Push"
	case Set:
		return "Set"
	case Pop:
		return "Pop"
	default:
		return "Operation(?)"
	}
}

// Capture maps a regex capture-group index to the ordered scopes pushed
// for the text that group matched.
type Capture struct {
	Index  int
	Scopes []scope.Scope
}

// MatchPattern is a single match rule inside a Context: a regular
// expression plus the scopes and stack action to apply when it wins.
type MatchPattern struct {
	// RegexText is the pattern source, possibly containing backslash-digit
	// backreference placeholders substituted at use time (see
	// regexadapter.CompileWithRefs).
	RegexText string

	// HasCaptures reports whether RegexText may contain backreference
	// placeholders that must be substituted using a prior match's captured
	// regions before this pattern is searched.
	HasCaptures bool

	// Scope is pushed (and later popped) around the literal matched token.
	Scope []scope.Scope

	// Captures maps capture-group index to the scopes pushed for that
	// group's matched range, in declaration order.
	Captures []Capture

	// Operation is the stack action this pattern's match performs.
	Operation Operation

	// ContextRefs are the contexts to push/set, for Operation == Push or
	// Set, in the order they should be pushed.
	ContextRefs []ContextRef

	// WithPrototype, if Valid, is injected into the match search while
	// the frame this pattern pushes is on top of the stack.
	WithPrototype ContextRef

	compileOnce sync.Once
	compiled    any // *regexadapter.Regex once compileOnce has fired; nil if compilation failed.
}

// EnsureCompiled runs compute exactly once for this pattern and caches its
// result, satisfying the "first use of a pattern may mutate it exactly
// once" contract (core spec §5) with a thread-safe guard rather than
// requiring callers to serialize compilation themselves.
func (p *MatchPattern) EnsureCompiled(compute func() any) any {
	p.compileOnce.Do(func() { p.compiled = compute() })
	return p.compiled
}

// Context is a node in the syntax graph: an ordered list of match patterns
// plus the scopes/behavior associated with being on top of the stack.
type Context struct {
	// Name is a human-readable identifier, for debugging and for the
	// synthetic "__start" context referenced by ContextRef.
	Name string

	// Patterns are this context's own match rules, in declaration order.
	// An Include entry represents an `include:` directive and is expanded
	// by Graph.Iterate rather than matched directly.
	Patterns []PatternOrInclude

	// MetaScope is pushed while this context is on top of the stack.
	MetaScope []scope.Scope

	// MetaContentScope is pushed for content matched *within* this
	// context (not for the push/pop tokens themselves).
	MetaContentScope []scope.Scope

	// ClearScopes, if non-nil, hides this many scopes (or all, if
	// ClearAmount.All) upon entry; restored via ScopeStackOp Restore when
	// the context is popped.
	ClearScopes *ClearAmount

	// Prototype, if set, is consulted before this context's own patterns
	// (see synparse's match-selector visit order).
	Prototype ContextRef

	// UsesBackrefs is true if any pattern in this context (transitively,
	// through includes) references a previous capture.
	UsesBackrefs bool
}

// ClearAmount is the nonnegative count of scopes a Push/Set's target
// context hides upon entry, or "all of them".
type ClearAmount struct {
	All   bool
	Count int
}

// PatternOrInclude is either a MatchPattern or an `include:` reference to
// another context's patterns, expanded in place during iteration.
type PatternOrInclude struct {
	Pattern *MatchPattern
	Include ContextRef
}

// IsInclude reports whether this entry is an include directive rather
// than a literal match pattern.
func (p PatternOrInclude) IsInclude() bool { return p.Pattern == nil }
