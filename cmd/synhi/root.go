// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command synhi is a small CLI front end for the syncore parser: it loads
// a .sublime-syntax-shaped YAML file and runs it over a source file,
// printing the scope stack the parser produces line by line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosyn/syncore/internal/config"
	"github.com/gosyn/syncore/internal/logx"
)

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "synhi.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at info level")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "log at debug level")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "log errors only")
}

var rootCmd = &cobra.Command{
	Use:   "synhi",
	Short: "synhi highlights source files using a Sublime Text-compatible syntax definition",
	Long: `synhi loads a .sublime-syntax-shaped YAML syntax definition and runs
the syncore incremental parser over a source file, printing the scope
stack it produces for each line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		logx.UserLevel = logx.LevelFromFlags(debug, verbose, quiet)
		logx.SetDefaultLogger()
		return nil
	},
}

// loadConfig reads cfgFile, falling back to defaults when it doesn't
// exist so synhi works with no config file present at all.
func loadConfig() config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logx.Printf(logx.Debug, "using default config: %v", err)
		return config.Default()
	}
	return cfg
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
