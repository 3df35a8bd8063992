// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled printing for user-facing output,
// alongside the structured logging of the standard library slog.
// The verbosity of a command line tool should be controlled by
// setting [UserLevel] based on user flags.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity level for user-facing output;
// only messages at or above this level are printed.
// It defaults to [slog.LevelInfo], or [slog.LevelDebug] when the
// "debug" build tag is set, or [slog.LevelWarn] when "release" is.
// Command line tools should set this based on -v / -q style flags.
var UserLevel = defaultUserLevel

// Stdout and Stderr are the destinations for printed messages.
// Info and debug messages go to [Stdout]; warnings and errors
// go to [Stderr]. They can be redirected for testing.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// print writes the message if level is at or above [UserLevel],
// appending a newline when ln is set. Color sequences wrap the
// message but not the newline.
func print(w io.Writer, level slog.Level, msg string, ln bool) {
	if UserLevel > level {
		return
	}
	if ln {
		msg += "\n"
	}
	fmt.Fprint(w, msg)
}

// sprint is [fmt.Sprintln] without the trailing newline.
func sprint(a ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}

// PrintDebug prints the given arguments at [slog.LevelDebug].
func PrintDebug(a ...any) {
	print(Stdout, slog.LevelDebug, DebugColor(fmt.Sprint(a...)), false)
}

// PrintlnDebug prints the given arguments at [slog.LevelDebug], with a newline.
func PrintlnDebug(a ...any) {
	print(Stdout, slog.LevelDebug, DebugColor(sprint(a...)), true)
}

// PrintfDebug prints the formatted message at [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	print(Stdout, slog.LevelDebug, DebugColor(fmt.Sprintf(format, a...)), false)
}

// PrintInfo prints the given arguments at [slog.LevelInfo].
func PrintInfo(a ...any) {
	print(Stdout, slog.LevelInfo, fmt.Sprint(a...), false)
}

// PrintlnInfo prints the given arguments at [slog.LevelInfo], with a newline.
func PrintlnInfo(a ...any) {
	print(Stdout, slog.LevelInfo, sprint(a...), true)
}

// PrintfInfo prints the formatted message at [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	print(Stdout, slog.LevelInfo, fmt.Sprintf(format, a...), false)
}

// PrintWarn prints the given arguments at [slog.LevelWarn].
func PrintWarn(a ...any) {
	print(Stderr, slog.LevelWarn, WarnColor(fmt.Sprint(a...)), false)
}

// PrintlnWarn prints the given arguments at [slog.LevelWarn], with a newline.
func PrintlnWarn(a ...any) {
	print(Stderr, slog.LevelWarn, WarnColor(sprint(a...)), true)
}

// PrintfWarn prints the formatted message at [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	print(Stderr, slog.LevelWarn, WarnColor(fmt.Sprintf(format, a...)), false)
}

// PrintError prints the given arguments at [slog.LevelError].
func PrintError(a ...any) {
	print(Stderr, slog.LevelError, ErrorColor(fmt.Sprint(a...)), false)
}

// PrintlnError prints the given arguments at [slog.LevelError], with a newline.
func PrintlnError(a ...any) {
	print(Stderr, slog.LevelError, ErrorColor(sprint(a...)), true)
}

// PrintfError prints the formatted message at [slog.LevelError].
func PrintfError(format string, a ...any) {
	print(Stderr, slog.LevelError, ErrorColor(fmt.Sprintf(format, a...)), false)
}
