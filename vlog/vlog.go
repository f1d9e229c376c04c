// Package vlog carries the process-wide structured logger used across the
// simulation packages, built on log/slog. It adds a Verbose level below
// Debug for the per-edge trace output of the graph algorithms, which is far
// too chatty for normal debug runs.
package vlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// LevelVerbose sits below slog.LevelDebug and gates per-edge trace output.
const LevelVerbose = slog.LevelDebug - 4

var logger atomic.Pointer[slog.Logger]

// The default logger discards everything; callers opt into output through
// SetLogger.
func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger replaces the process-wide logger. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// L returns the current logger.
func L() *slog.Logger { return logger.Load() }

// NewLeveled builds a text-handler logger writing to stderr at the given
// minimum level, rendering the Verbose level by name.
func NewLeveled(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv == LevelVerbose {
					a.Value = slog.StringValue("VERBOSE")
				}
			}
			return a
		},
	}))
}

// ParseLevel maps a level name to its slog value. Unknown names default to
// Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verbose":
		return LevelVerbose
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Verbose logs msg with attrs at LevelVerbose.
func Verbose(msg string, args ...any) {
	L().Log(context.Background(), LevelVerbose, msg, args...)
}

// Debug logs msg with attrs at Debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs msg with attrs at Info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// TruncateTape shortens a tape string for log output, keeping the head and
// the certificate region marker readable.
func TruncateTape(tape string, max int) string {
	if max <= 0 || len([]rune(tape)) <= max {
		return tape
	}
	r := []rune(tape)
	return string(r[:max]) + "…"
}
