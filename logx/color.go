// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default, but only has an effect when
// [ColorProfile] supports colors.
var UseColor = true

// ColorProfile is the termenv color profile, stored globally for convenience.
// It is set by [InitColor] to [termenv.Ascii] when stdout is not a terminal.
var ColorProfile termenv.Profile

func init() {
	InitColor()
}

// InitColor sets [ColorProfile] from the current environment.
func InitColor() {
	ColorProfile = termenv.NewOutput(os.Stdout).EnvColorProfile()
}

func colored(str string, c termenv.Color) string {
	if !UseColor || ColorProfile == termenv.Ascii {
		return str
	}
	return termenv.String(str).Foreground(c).String()
}

// LevelColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	}
	return DebugColor(str)
}

// DebugColor applies the color associated with the debug level.
func DebugColor(str string) string {
	return colored(str, ColorProfile.Color("8"))
}

// InfoColor leaves info messages in the default terminal color.
func InfoColor(str string) string {
	return str
}

// WarnColor applies the color associated with the warn level.
func WarnColor(str string) string {
	return colored(str, ColorProfile.Color("3"))
}

// ErrorColor applies the color associated with the error level.
func ErrorColor(str string) string {
	return colored(str, ColorProfile.Color("1"))
}

// SuccessColor applies the color associated with success.
func SuccessColor(str string) string {
	return colored(str, ColorProfile.Color("2"))
}

// CmdColor applies the color associated with terminal commands and arguments.
func CmdColor(str string) string {
	return colored(str, ColorProfile.Color("5"))
}

// TitleColor applies the color associated with titles.
func TitleColor(str string) string {
	return colored(str, ColorProfile.Color("4"))
}
