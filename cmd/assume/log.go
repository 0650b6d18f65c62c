package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcpl-sympy/sympy/debug"
)

// theLog writes to stderr; debug records show with SYMPY_DEBUG_CLI set.
var theLog = newLog(os.Stderr, debug.CLI())

func newLog(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: terse,
	}))
}

// terse drops the time and the INFO level.
func terse(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		if lv, ok := a.Value.Any().(slog.Level); ok && lv == slog.LevelInfo {
			return slog.Attr{}
		}
	}
	return a
}
