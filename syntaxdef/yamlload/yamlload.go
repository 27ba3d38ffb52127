// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlload builds a syntax.Graph from a YAML document shaped
// like a Sublime Text .sublime-syntax file: a top-level "contexts" map of
// named rule lists, where each rule is a match pattern, an include
// directive, or a meta/clear_scopes/prototype declaration for the
// enclosing context. It supports the subset of the format synparse's
// data model (syntax.Context / syntax.MatchPattern) can represent;
// Sublime's full feature set (inline anonymous with_prototype blocks,
// variables, embeds) is out of scope — see DESIGN.md.
package yamlload

import (
	"fmt"
	"io"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/syntax"
)

// Definition is a loaded syntax definition: its declared top-level scope
// name and the graph of contexts ready for synparse.NewParseState.
type Definition struct {
	Scope scope.Scope
	Graph *syntax.Graph
}

type rawSyntax struct {
	Scope    string               `yaml:"scope"`
	Contexts map[string][]rawRule `yaml:"contexts"`
}

type rawRule struct {
	Include          string         `yaml:"include"`
	Match            string         `yaml:"match"`
	Scope            string         `yaml:"scope"`
	Captures         map[int]string `yaml:"captures"`
	Push             yaml.Node      `yaml:"push"`
	Pop              bool           `yaml:"pop"`
	Set              yaml.Node      `yaml:"set"`
	WithPrototype    string         `yaml:"with_prototype"`
	MetaScope        string         `yaml:"meta_scope"`
	MetaContentScope string         `yaml:"meta_content_scope"`
	ClearScopes      yaml.Node      `yaml:"clear_scopes"`
	Prototype        string         `yaml:"prototype"`
}

var backrefScan = regexp.MustCompile(`\\[0-9]`)

// Load parses r as a .sublime-syntax-shaped YAML document and returns the
// resulting Definition. The context named "main" becomes the graph's
// synthetic start context.
func Load(r io.Reader) (*Definition, error) {
	var raw rawSyntax
	dec := yaml.NewDecoder(r)
	dec.KnownFields(false)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("yamlload: decode: %w", err)
	}
	if _, ok := raw.Contexts["main"]; !ok {
		return nil, fmt.Errorf("yamlload: syntax has no %q context", "main")
	}

	g := syntax.NewGraph()
	refs := make(map[string]syntax.ContextRef, len(raw.Contexts))
	for name := range raw.Contexts {
		graphName := name
		if name == "main" {
			graphName = syntax.StartContextName
		}
		refs[name] = g.Reserve(graphName)
	}

	resolve := func(name string) (syntax.ContextRef, error) {
		ref, ok := refs[name]
		if !ok {
			return syntax.ContextRef{}, fmt.Errorf("yamlload: context %q not defined", name)
		}
		return ref, nil
	}

	for name, rules := range raw.Contexts {
		ctx := &syntax.Context{Name: name}
		if name == "main" {
			ctx.Name = syntax.StartContextName
		}

		for _, rule := range rules {
			switch {
			case rule.MetaScope != "":
				ctx.MetaScope = append(ctx.MetaScope, scope.New(rule.MetaScope))
				continue
			case rule.MetaContentScope != "":
				ctx.MetaContentScope = append(ctx.MetaContentScope, scope.New(rule.MetaContentScope))
				continue
			case rule.Prototype != "":
				protoRef, err := resolve(rule.Prototype)
				if err != nil {
					return nil, err
				}
				ctx.Prototype = protoRef
				continue
			case rule.ClearScopes.Kind != 0:
				amount, err := parseClearAmount(&rule.ClearScopes)
				if err != nil {
					return nil, fmt.Errorf("yamlload: context %q: %w", name, err)
				}
				ctx.ClearScopes = amount
				continue
			case rule.Include != "":
				includeRef, err := resolve(rule.Include)
				if err != nil {
					return nil, err
				}
				ctx.Patterns = append(ctx.Patterns, syntax.PatternOrInclude{Include: includeRef})
				continue
			}

			pat, usesBackrefs, err := buildPattern(rule, resolve)
			if err != nil {
				return nil, fmt.Errorf("yamlload: context %q: %w", name, err)
			}
			ctx.Patterns = append(ctx.Patterns, syntax.PatternOrInclude{Pattern: pat})
			ctx.UsesBackrefs = ctx.UsesBackrefs || usesBackrefs
		}

		g.Define(refs[name], ctx)
	}

	// A context that includes one using backrefs uses them too, so the
	// flag is carried up through include chains until nothing changes.
	for changed := true; changed; {
		changed = false
		for _, ref := range refs {
			ctx := g.Resolve(ref)
			if ctx.UsesBackrefs {
				continue
			}
			for _, entry := range ctx.Patterns {
				if entry.IsInclude() && g.Resolve(entry.Include).UsesBackrefs {
					ctx.UsesBackrefs = true
					changed = true
					break
				}
			}
		}
	}

	return &Definition{Scope: scope.New(raw.Scope), Graph: g}, nil
}

func buildPattern(rule rawRule, resolve func(string) (syntax.ContextRef, error)) (*syntax.MatchPattern, bool, error) {
	pat := &syntax.MatchPattern{
		RegexText:   rule.Match,
		HasCaptures: backrefScan.MatchString(rule.Match),
	}
	if rule.Scope != "" {
		pat.Scope = []scope.Scope{scope.New(rule.Scope)}
	}
	// Captures are listed in ascending group-index order; the decoded YAML
	// map itself carries no order.
	indices := make([]int, 0, len(rule.Captures))
	for idx := range rule.Captures {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		pat.Captures = append(pat.Captures, syntax.Capture{Index: idx, Scopes: []scope.Scope{scope.New(rule.Captures[idx])}})
	}

	usesBackrefs := pat.HasCaptures
	switch {
	case rule.Pop:
		pat.Operation = syntax.Pop
	case rule.Push.Kind != 0:
		refs, err := contextRefs(&rule.Push, resolve)
		if err != nil {
			return nil, false, err
		}
		pat.Operation = syntax.Push
		pat.ContextRefs = refs
	case rule.Set.Kind != 0:
		refs, err := contextRefs(&rule.Set, resolve)
		if err != nil {
			return nil, false, err
		}
		pat.Operation = syntax.Set
		pat.ContextRefs = refs
	default:
		pat.Operation = syntax.None
	}

	if rule.WithPrototype != "" {
		protoRef, err := resolve(rule.WithPrototype)
		if err != nil {
			return nil, false, err
		}
		pat.WithPrototype = protoRef
	}

	return pat, usesBackrefs, nil
}

// contextRefs decodes a push/set node, which Sublime syntax allows to be
// either a single context name or a list of names pushed in order.
func contextRefs(node *yaml.Node, resolve func(string) (syntax.ContextRef, error)) ([]syntax.ContextRef, error) {
	var names []string
	switch node.Kind {
	case yaml.ScalarNode:
		names = []string{node.Value}
	case yaml.SequenceNode:
		for _, child := range node.Content {
			names = append(names, child.Value)
		}
	default:
		return nil, fmt.Errorf("yamlload: push/set must be a scalar or a list of context names")
	}

	refs := make([]syntax.ContextRef, 0, len(names))
	for _, name := range names {
		ref, err := resolve(name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseClearAmount(node *yaml.Node) (*syntax.ClearAmount, error) {
	if node.Value == "all" {
		return &syntax.ClearAmount{All: true}, nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return nil, fmt.Errorf("clear_scopes: %w", err)
	}
	return &syntax.ClearAmount{Count: n}, nil
}
