package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := New(Config{Level: tc.level, Format: "json"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !l.Core().Enabled(tc.want) {
				t.Fatalf("level %v not enabled", tc.want)
			}
			if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
				t.Fatalf("level below %v enabled", tc.want)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DASHCRAWLER_LOG_LEVEL", "debug")
	t.Setenv("DASHCRAWLER_LOG_FORMAT", "json")
	cfg := FromEnv(DefaultConfig())
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestInstallAndNamed(t *testing.T) {
	_, undo, err := Install(Config{Level: "debug", Format: "console", Development: true})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	defer undo()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	Named("tuning").Info("reloaded")
	entries := logs.All()
	if len(entries) != 1 || entries[0].LoggerName != "tuning" {
		t.Fatalf("entries = %+v", entries)
	}
}
