// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/gosyn/syncore/internal/logx"
	"github.com/gosyn/syncore/scope"
	"github.com/gosyn/syncore/scopestack"
	"github.com/gosyn/syncore/synparse"
	"github.com/gosyn/syncore/syntaxdef/yamlload"
)

func init() {
	rootCmd.AddCommand(highlightCmd)
}

var highlightCmd = &cobra.Command{
	Use:   "highlight [source file]",
	Short: "Parse a source file and print its scope stack line by line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return runHighlight(cfg.Syntax, args[0])
	},
}

func runHighlight(syntaxPath, sourcePath string) error {
	syntaxPath, err := homedir.Expand(syntaxPath)
	if err != nil {
		return fmt.Errorf("synhi: expanding syntax path: %w", err)
	}
	sourcePath, err = homedir.Expand(sourcePath)
	if err != nil {
		return fmt.Errorf("synhi: expanding source path: %w", err)
	}

	def, err := loadSyntax(syntaxPath)
	if err != nil {
		return err
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("synhi: opening %s: %w", sourcePath, err)
	}
	defer f.Close()

	p := synparse.NewParseState(def.Graph)
	stack := scopestack.New()
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		ops := p.ParseLine(sc.Text())
		stack.ApplyAll(ops)
		fmt.Printf("%4d: %s\n", lineNo, scopeList(stack.Scopes()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("synhi: reading %s: %w", sourcePath, err)
	}
	return nil
}

func loadSyntax(syntaxPath string) (*yamlload.Definition, error) {
	f, err := os.Open(syntaxPath)
	if err != nil {
		return nil, fmt.Errorf("synhi: opening %s: %w", syntaxPath, err)
	}
	defer f.Close()

	def, err := yamlload.Load(f)
	if err != nil {
		return nil, fmt.Errorf("synhi: loading %s: %w", syntaxPath, err)
	}
	logx.Printf(logx.Debug, "loaded syntax %s from %s", def.Scope, syntaxPath)
	return def, nil
}

func scopeList(scopes []scope.Scope) string {
	if len(scopes) == 0 {
		return "(none)"
	}
	out := ""
	for i, s := range scopes {
		if i > 0 {
			out += " "
		}
		out += s.String()
	}
	return out
}
