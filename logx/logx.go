// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging setup on top of log/slog,
// plus colored status printing for command line tools.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at levels
// at or above this level will be shown. It should typically be set through
// the command line flags of the program. The default is [slog.LevelInfo],
// [slog.LevelDebug] with the debug build tag, and [slog.LevelWarn] with the
// release build tag.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(defaultUserLevel)
}

// Output is where [Println] and friends write to.
// Writes to it are serialized, so printing from several goroutines
// does not interleave messages.
var Output io.Writer = os.Stdout

var outputMu sync.Mutex

func write(str string) (n int, err error) {
	outputMu.Lock()
	defer outputMu.Unlock()
	return io.WriteString(Output, str)
}

// SetDefaultLogger sets the default logger to a text handler on stderr
// whose level is controlled by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a new text logger writing to w,
// with its level controlled by [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetVerbosity sets [UserLevel] from the standard verbose and quiet flags.
// Verbose wins if both are set.
func SetVerbosity(verbose, quiet bool) {
	switch {
	case verbose:
		UserLevel.Set(slog.LevelDebug)
	case quiet:
		UserLevel.Set(slog.LevelWarn)
	}
}

// Println is equivalent to [fmt.Fprintln] on [Output], but with color
// based on the given level. It only prints if [UserLevel] is at or
// below the given level.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel.Level() > level {
		return 0, nil
	}
	return write(LevelColor(level, fmt.Sprint(a...)) + "\n")
}

// Printf is equivalent to [fmt.Fprintf] on [Output], but with color
// based on the given level. It only prints if [UserLevel] is at or
// below the given level.
func Printf(level slog.Level, format string, a ...any) (n int, err error) {
	if UserLevel.Level() > level {
		return 0, nil
	}
	return write(LevelColor(level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug is equivalent to [Println] with [slog.LevelDebug].
func PrintlnDebug(a ...any) (n int, err error) {
	return Println(slog.LevelDebug, a...)
}

// PrintlnInfo is equivalent to [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) (n int, err error) {
	return Println(slog.LevelInfo, a...)
}

// PrintlnWarn is equivalent to [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) {
	return Println(slog.LevelWarn, a...)
}

// PrintfInfo is equivalent to [Printf] with [slog.LevelInfo].
func PrintfInfo(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelInfo, format, a...)
}
