// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is the ambient logging layer for synhi commands: a thin
// wrapper over log/slog that gates output by a single user-facing
// verbosity level, the way the rest of the ecosystem's CLI tools do.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// Level aliases slog.Level so callers don't need a separate import for
// the common cases.
type Level = slog.Level

const (
	Debug Level = slog.LevelDebug
	Info  Level = slog.LevelInfo
	Warn  Level = slog.LevelWarn
	Error Level = slog.LevelError
)

// UserLevel is the minimum level that reaches the terminal. Commands set
// it once at startup from -v/-q flags; library code never mutates it.
var UserLevel = Info

// LevelFromFlags derives a Level from a command's verbosity flags:
// veryVerbose wins over verbose, which wins over quiet; with none set the
// level is Warn.
func LevelFromFlags(veryVerbose, verbose, quiet bool) Level {
	switch {
	case veryVerbose:
		return Debug
	case verbose:
		return Info
	case quiet:
		return Error
	default:
		return Warn
	}
}

// SetDefaultLogger installs an slog handler, gated by UserLevel, as the
// process-wide default logger.
func SetDefaultLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})
	slog.SetDefault(slog.New(h))
}

// Printf logs a formatted message at level if UserLevel permits it.
func Printf(level Level, format string, args ...any) {
	if level < UserLevel {
		return
	}
	slog.Log(nil, level, fmt.Sprintf(format, args...))
}

// Println logs args space-joined at level if UserLevel permits it.
func Println(level Level, args ...any) {
	if level < UserLevel {
		return
	}
	slog.Log(nil, level, fmt.Sprintln(args...))
}
