// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synparse

import (
	"github.com/gosyn/syncore/regexadapter"
	"github.com/gosyn/syncore/syntax"
)

// defaultSearchCacheCapacity sizes the per-line search cache around the
// typical number of patterns consulted per line (core spec §9's
// performance note).
const defaultSearchCacheCapacity = 128

// searchCache memoizes per-pattern search results for the duration of one
// ParseLine call, keyed by pattern identity (the *syntax.MatchPattern
// pointer), never by pattern content.
type searchCache struct {
	entries map[*syntax.MatchPattern]cacheEntry
}

type cacheEntry struct {
	found   bool
	regions *regexadapter.Regions
}

func newSearchCache() *searchCache {
	return &searchCache{entries: make(map[*syntax.MatchPattern]cacheEntry, defaultSearchCacheCapacity)}
}

// search runs pat against line starting at start, consulting and updating
// the cache per the core spec's §4.3 rules: the cache is only consulted,
// and only written, when no back-reference substitution is in play for
// this call — a cached region (positive or negative) always reflects the
// base, unsubstituted regex, never a refs-derived one.
func (c *searchCache) search(line string, start int, pat *syntax.MatchPattern, captures *captureSnapshot) (*regexadapter.Regions, bool) {
	if !pat.HasCaptures || captures == nil {
		if entry, ok := c.entries[pat]; ok {
			if !entry.found {
				return nil, false
			}
			if ms, _, ok := entry.regions.Pos(0); ok && ms >= start {
				return entry.regions, true
			}
			// Stale: recompute below.
		}
	}

	regex, usingRefs := resolveRegex(pat, captures)
	if regex == nil {
		if !usingRefs {
			c.entries[pat] = cacheEntry{found: false}
		}
		return nil, false
	}

	regions, ok := regexadapter.Search(regex, line, start, len(line))
	if !ok {
		if !usingRefs {
			c.entries[pat] = cacheEntry{found: false}
		}
		return nil, false
	}

	matchStart, matchEnd, _ := regions.Pos(0)
	doesSomething := !(pat.Operation == syntax.None && matchStart == matchEnd)
	if !usingRefs && doesSomething {
		c.entries[pat] = cacheEntry{found: true, regions: regions}
	}
	if !doesSomething {
		return nil, false
	}
	return regions, true
}

// resolveRegex returns the regex to search with for this call — the
// one-shot-compiled base regex, or (when pat.HasCaptures and captures is
// available) a freshly derived, uncached regex with backreferences
// substituted from captures.
func resolveRegex(pat *syntax.MatchPattern, captures *captureSnapshot) (regex *regexadapter.Regex, usingRefs bool) {
	compiledAny := pat.EnsureCompiled(func() any {
		re, err := regexadapter.Compile(pat.RegexText)
		if err != nil {
			return (*regexadapter.Regex)(nil)
		}
		return re
	})
	base, _ := compiledAny.(*regexadapter.Regex)

	if pat.HasCaptures && captures != nil {
		derived, err := regexadapter.CompileWithRefs(pat.RegexText, captures.regions, captures.line)
		if err == nil {
			return derived, true
		}
	}
	return base, false
}
