package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLevelGating(t *testing.T) {
	Setup("distaz-test", "warn", "text")
	if slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn disabled at warn level")
	}

	Setup("distaz-test", "debug", "json")
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug disabled at debug level")
	}

	Setup("distaz-test", "bogus", "json")
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("unknown level should fall back to info")
	}
}
