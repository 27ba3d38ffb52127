// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scopestack is a minimal ScopeStackOp applier: it renders the op
// sequence synparse.ParseState.ParseLine emits into the actual scope
// stack an op describes, for tests and for simple consumers that don't
// need a full theming/rendering pipeline.
package scopestack

import (
	"fmt"
	"strings"

	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/synparse"
)

// Stack is an applied scope stack: the sequence of scopes in effect at
// the current point, plus any scopes most recently hidden by a Clear
// still awaiting their Restore.
type Stack struct {
	scopes  []scope.Scope
	cleared [][]scope.Scope // LIFO: each Clear pushes the scopes it hid
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// Apply mutates s according to op, panicking on a Pop that would
// underflow the stack — a malformed op sequence is a bug in the producer,
// not a condition callers of Apply need to handle gracefully. A Clear
// larger than the stack hides every scope there is, and a Restore with
// nothing cleared is ignored.
func (s *Stack) Apply(op synparse.ScopeStackOp) {
	switch op.Kind {
	case synparse.OpPush:
		s.scopes = append(s.scopes, op.Scope)

	case synparse.OpPop:
		if op.N > len(s.scopes) {
			panic(fmt.Sprintf("scopestack: Pop(%d) underflows a stack of depth %d", op.N, len(s.scopes)))
		}
		s.scopes = s.scopes[:len(s.scopes)-op.N]

	case synparse.OpClear:
		n := op.Clear.Count
		if op.Clear.All {
			n = len(s.scopes)
		}
		if n > len(s.scopes) {
			n = len(s.scopes)
		}
		hidden := append([]scope.Scope(nil), s.scopes[len(s.scopes)-n:]...)
		s.scopes = s.scopes[:len(s.scopes)-n]
		s.cleared = append(s.cleared, hidden)

	case synparse.OpRestore:
		if len(s.cleared) == 0 {
			return
		}
		last := s.cleared[len(s.cleared)-1]
		s.cleared = s.cleared[:len(s.cleared)-1]
		s.scopes = append(s.scopes, last...)
	}
}

// ApplyAll applies every op in ops, in order.
func (s *Stack) ApplyAll(ops []synparse.Emitted) {
	for _, e := range ops {
		s.Apply(e.Op)
	}
}

// Scopes returns the currently visible scopes, bottom to top. The
// returned slice is owned by the caller.
func (s *Stack) Scopes() []scope.Scope {
	return append([]scope.Scope(nil), s.scopes...)
}

// DebugOps formats an Emitted sequence one op per line, offset first, for
// use in test failure output and ad hoc tracing.
func DebugOps(ops []synparse.Emitted) string {
	var b strings.Builder
	for _, e := range ops {
		fmt.Fprintf(&b, "%4d  %s\n", e.Offset, e.Op.String())
	}
	return b.String()
}
