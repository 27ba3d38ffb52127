// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import (
	"fmt"

	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/syntax"
)

// OpKind is the kind of change a ScopeStackOp asks a scope-stack applier
// to make.
type OpKind int

const (
	// OpPush pushes Scope on top of the stack.
	OpPush OpKind = iota
	// OpPop removes the top N scopes from the stack.
	OpPop
	// OpClear hides the top Clear.Count scopes (or all of them, if
	// Clear.All) without removing them, until the matching Restore.
	OpClear
	// OpRestore un-hides the most recently cleared set of scopes.
	OpRestore
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "Push"
	case OpPop:
		return "Pop"
	case OpClear:
		return "Clear"
	case OpRestore:
		return "Restore"
	default:
		return "OpKind(?)"
	}
}

// ScopeStackOp is one instruction in the ordered sequence ParseLine
// returns: Push(scope), Pop(n), Clear(amount), or Restore.
type ScopeStackOp struct {
	Kind  OpKind
	Scope scope.Scope      // valid when Kind == OpPush
	N     int              // valid when Kind == OpPop: count of scopes to pop
	Clear syntax.ClearAmount // valid when Kind == OpClear
}

func pushOp(s scope.Scope) ScopeStackOp       { return ScopeStackOp{Kind: OpPush, Scope: s} }
func popOp(n int) ScopeStackOp                { return ScopeStackOp{Kind: OpPop, N: n} }
func clearOp(a syntax.ClearAmount) ScopeStackOp { return ScopeStackOp{Kind: OpClear, Clear: a} }
func restoreOp() ScopeStackOp                 { return ScopeStackOp{Kind: OpRestore} }

func (op ScopeStackOp) String() string {
	switch op.Kind {
	case OpPush:
		return fmt.Sprintf("Push(%s)", op.Scope.String())
	case OpPop:
		return fmt.Sprintf("Pop(%d)", op.N)
	case OpClear:
		if op.Clear.All {
			return "Clear(All)"
		}
		return fmt.Sprintf("Clear(%d)", op.Clear.Count)
	case OpRestore:
		return "Restore"
	default:
		return "Op(?)"
	}
}

// Emitted pairs a ScopeStackOp with the byte offset in the line it applies
// at. A line's emitted ops are always non-decreasing in Offset.
type Emitted struct {
	Offset int
	Op     ScopeStackOp
}
