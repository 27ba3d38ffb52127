// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regexadapter is the thin contract synparse needs over a
// backtracking regex engine: compiling a pattern (optionally with
// back-reference placeholders substituted from a previous match's
// captured regions), and searching a line from a given start offset for
// named/numbered capture groups.
//
// It is backed by github.com/dlclark/regexp2, a .NET-flavored backtracking
// engine with lookaround and (when not substituted away, see
// CompileWithRefs) live backreference support — unlike the stdlib
// regexp/RE2 engine, which supports neither and so cannot serve this
// contract.
package regexadapter

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Regex wraps a compiled pattern. It is safe for concurrent Search calls.
type Regex struct {
	re *regexp2.Regexp
}

// Compile compiles pattern with no back-reference substitution. A
// compile failure is never returned as fatal by synparse; callers there
// treat a nil, non-nil-error result as "this pattern never matches".
func Compile(pattern string) (*Regex, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("regexadapter: compile %q: %w", pattern, err)
	}
	return &Regex{re: re}, nil
}

// backrefPlaceholder matches an unescaped \N backreference placeholder in
// pattern source text, where N is a single digit naming a capture group
// from a previous match (not a same-regex backreference, which
// regexp2 would support natively — these are substituted away before
// compilation because they refer to a capture from a different, earlier
// regex entirely). An escaped backslash (\\) is matched as a unit as well,
// so that a digit following it is never taken for a placeholder.
var backrefPlaceholder = regexp.MustCompile(`\\(\\|\d)`)

// CompileWithRefs compiles pattern after substituting each \N placeholder
// with the literal (regex-escaped) text captured by group N in prior,
// using prior's captured regions over sourceLine. The result is never
// cached by identity (see synparse's search cache rules), since it is
// specific to the captures that produced it.
func CompileWithRefs(pattern string, prior *Regions, sourceLine string) (*Regex, error) {
	substituted := backrefPlaceholder.ReplaceAllStringFunc(pattern, func(m string) string {
		if m[1] == '\\' {
			return m
		}
		digit := m[1] - '0'
		start, end, ok := prior.Pos(int(digit))
		if !ok || start < 0 || end > len(sourceLine) || start > end {
			// Unknown or unmatched group: substitute nothing, so the
			// surrounding pattern structure decides what happens (this
			// mirrors an absent backref capturing the empty string).
			return ""
		}
		return regexp.QuoteMeta(sourceLine[start:end])
	})
	return Compile(substituted)
}

// Regions is a compiled match's captured group positions, group 0 being
// the whole match. Pos mirrors the onig::Region contract the core spec
// names in §6.
//
// regexp2 itself indexes captures by rune (codepoint), not by byte; Pos
// passes those offsets through unchanged. synparse treats every offset it
// receives from this package — start/end positions, the search window,
// and the loop guard's byte-wise start++ advance — as if it were a byte
// offset. The two coincide for ASCII input, which is what the core spec's
// testable properties (§8) exercise; callers feeding multibyte lines
// through this adapter must keep that in mind, per the open byte-vs-
// codepoint question in §9.
type Regions struct {
	starts []int
	ends   []int
}

// Pos returns the [start, end) range (in the same units Search's line
// argument is indexed in — see the Regions doc comment) capture group i
// matched over the searched line, or ok == false if group i did not
// participate in the match (or doesn't exist).
func (r *Regions) Pos(i int) (start, end int, ok bool) {
	if r == nil || i < 0 || i >= len(r.starts) {
		return 0, 0, false
	}
	if r.starts[i] < 0 {
		return 0, 0, false
	}
	return r.starts[i], r.ends[i], true
}

// Count returns the number of capture groups, including group 0.
func (r *Regions) Count() int {
	if r == nil {
		return 0
	}
	return len(r.starts)
}

// Search finds the first match of re in line at or after start, up to
// end. start and end are regexp2's native indexing unit (runes, not
// bytes — see the Regions doc comment); callers must pass ASCII/byte-
// aligned offsets for those to agree. A search error (including a
// backtracking/timeout failure) is treated identically to "no match" —
// the contract never surfaces a distinct engine-error case to callers,
// matching the core spec's error table.
func Search(re *Regex, line string, start, end int) (*Regions, bool) {
	m, err := re.re.FindStringMatchStartingAt(line, start)
	if err != nil || m == nil {
		return nil, false
	}
	if m.Index+m.Length > end && end < len(line) {
		// A match that runs past the caller's requested window doesn't
		// count; re-searching narrower isn't meaningful for this engine,
		// so treat it as no match within [start,end).
		return nil, false
	}
	groups := m.Groups()
	regions := &Regions{
		starts: make([]int, len(groups)),
		ends:   make([]int, len(groups)),
	}
	for i, g := range groups {
		if len(g.Captures) == 0 {
			regions.starts[i] = -1
			regions.ends[i] = -1
			continue
		}
		c := g.Captures[len(g.Captures)-1]
		regions.starts[i] = c.Index
		regions.ends[i] = c.Index + c.Length
	}
	return regions, true
}
