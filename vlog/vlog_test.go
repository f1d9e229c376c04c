package vlog_test

import (
	"log/slog"
	"testing"

	"github.com/verigraph/verigraph/vlog"
)

// TestParseLevel verifies name mapping including the extra verbose level.
func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"verbose": vlog.LevelVerbose,
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := vlog.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// TestTruncateTape verifies rune-safe shortening.
func TestTruncateTape(t *testing.T) {
	if got := vlog.TruncateTape("short", 10); got != "short" {
		t.Errorf("TruncateTape(short) = %q", got)
	}
	got := vlog.TruncateTape("ϵϵϵϵϵ", 3)
	if got != "ϵϵϵ…" {
		t.Errorf("TruncateTape = %q, want %q", got, "ϵϵϵ…")
	}
}
