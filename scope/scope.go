// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope implements an interned, dotted semantic-label identifier,
// the kind a Sublime-Text-compatible highlighter assigns to byte ranges
// (e.g. "source.ruby.rails", "keyword.control.module.ruby").
package scope

import (
	"strings"
	"sync"
)

// Scope is an opaque, comparable identifier for a dotted scope name such as
// "meta.function.ruby". Two Scopes are equal if and only if they were
// interned from the same dotted string.
type Scope struct {
	id int32
}

// IsZero reports whether s is the zero Scope (no scope interned).
func (s Scope) IsZero() bool { return s.id == 0 }

var registry = newInterner()

// New interns name and returns its Scope. The empty string interns to the
// zero Scope.
func New(name string) Scope {
	if name == "" {
		return Scope{}
	}
	return Scope{id: registry.intern(name)}
}

// String returns the dotted name the Scope was interned from.
func (s Scope) String() string {
	if s.id == 0 {
		return ""
	}
	return registry.name(s.id)
}

// Parts splits the scope's dotted name into its components, e.g.
// "source.ruby.rails" -> ["source", "ruby", "rails"].
func (s Scope) Parts() []string {
	if s.id == 0 {
		return nil
	}
	return strings.Split(s.String(), ".")
}

type interner struct {
	mu      sync.RWMutex
	byName  map[string]int32
	byID    []string
}

func newInterner() *interner {
	// id 0 is reserved for the zero Scope, so byID[0] is a placeholder.
	return &interner{byName: make(map[string]int32), byID: []string{""}}
}

func (in *interner) intern(name string) int32 {
	in.mu.RLock()
	if id, ok := in.byName[name]; ok {
		in.mu.RUnlock()
		return id
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.byName[name]; ok {
		return id
	}
	id := int32(len(in.byID))
	in.byID = append(in.byID, name)
	in.byName[name] = id
	return id
}

func (in *interner) name(id int32) string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.byID) {
		return ""
	}
	return in.byID[id]
}
