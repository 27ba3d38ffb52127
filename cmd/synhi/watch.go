// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/gosyn/syncore/internal/logx"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [source file]",
	Short: "Re-highlight a source file every time it changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return runWatch(cfg.Syntax, args[0])
	},
}

func runWatch(syntaxPath, sourcePath string) error {
	sourcePath, err := homedir.Expand(sourcePath)
	if err != nil {
		return fmt.Errorf("synhi: expanding source path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("synhi: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(sourcePath); err != nil {
		return fmt.Errorf("synhi: watching %s: %w", sourcePath, err)
	}

	if err := runHighlight(syntaxPath, sourcePath); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logx.Printf(logx.Info, "%s changed, re-highlighting", event.Name)
			if err := runHighlight(syntaxPath, sourcePath); err != nil {
				logx.Printf(logx.Error, "re-highlight failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logx.Printf(logx.Error, "watcher error: %v", err)
		}
	}
}
