// Copyright (c) 2025, The WalnutBook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in printed messages.
// It is on by default; terminals that do not support color
// degrade gracefully through termenv profile detection.
var UseColor = true

// output is the termenv output used for styling messages.
var output = termenv.NewOutput(os.Stdout)

// InitColor reinitializes the terminal color state. It must be called
// after running external commands that may reset the terminal.
func InitColor() {
	output = termenv.NewOutput(os.Stdout)
}

// colorize returns the string styled in the given color,
// or unchanged if [UseColor] is off.
func colorize(s string, c termenv.ANSIColor) string {
	if !UseColor {
		return s
	}
	return output.String(s).Foreground(c).String()
}

// CmdColor returns the given string styled for echoed commands.
func CmdColor(s string) string {
	return colorize(s, termenv.ANSICyan)
}

// TitleColor returns the given string styled for section titles.
func TitleColor(s string) string {
	if !UseColor {
		return s
	}
	return output.String(s).Bold().String()
}

// SuccessColor returns the given string styled for success messages.
func SuccessColor(s string) string {
	return colorize(s, termenv.ANSIGreen)
}

// DebugColor returns the given string styled for debug messages.
func DebugColor(s string) string {
	return colorize(s, termenv.ANSIBrightBlack)
}

// WarnColor returns the given string styled for warning messages.
func WarnColor(s string) string {
	return colorize(s, termenv.ANSIYellow)
}

// ErrorColor returns the given string styled for error messages.
func ErrorColor(s string) string {
	return colorize(s, termenv.ANSIRed)
}
