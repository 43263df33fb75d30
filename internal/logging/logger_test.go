package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", "json")
	logger.Debug("hello", "k", "v")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected JSON record, got %q", buf.String())
	}
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", "TEXT")
	logger.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected text record, got %q", buf.String())
	}
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	logger := NewWithWriter(&bytes.Buffer{}, "loud", "json")
	ctx := context.Background()

	if logger.Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("debug should be disabled")
	}
	if !logger.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info should be enabled")
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("discard logger should drop info")
	}
}
