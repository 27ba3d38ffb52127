// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

// clone returns an independent captureSnapshot. The underlying Regions
// value is never mutated after a search produces it (see
// regexadapter.Search), so sharing the pointer across the original and
// the clone is safe; only the snapshot's own identity needs to be
// independent so that ParseState.Clone's invariant ("mutating p never
// affects the clone") holds even if a future caller starts mutating
// frames in place. A plain value copy is used rather than copier.Copy:
// both fields are unexported, and copier only copies exported, settable
// fields, so it would silently produce a zeroed snapshot here.
func (c *captureSnapshot) clone() *captureSnapshot {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
