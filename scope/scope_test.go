// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import "testing"

func TestInterning(t *testing.T) {
	a := New("source.ruby.rails")
	b := New("source.ruby.rails")
	c := New("meta.module.ruby")

	if a != b {
		t.Error("identical names should intern to the same Scope")
	}
	if a == c {
		t.Error("different names should intern to different Scopes")
	}
	if a.String() != "source.ruby.rails" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestZero(t *testing.T) {
	var z Scope
	if !z.IsZero() {
		t.Error("zero value should be IsZero")
	}
	if New("").IsZero() == false {
		t.Error("New(\"\") should be zero")
	}
	if z.String() != "" {
		t.Errorf("zero Scope String() = %q, want empty", z.String())
	}
}

func TestParts(t *testing.T) {
	s := New("keyword.control.module.ruby")
	parts := s.Parts()
	want := []string{"keyword", "control", "module", "ruby"}
	if len(parts) != len(want) {
		t.Fatalf("Parts() = %v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("Parts()[%d] = %q, want %q", i, parts[i], want[i])
		}
	}
}
