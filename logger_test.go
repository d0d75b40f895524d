package compositor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default logger discards everything without formatting.
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should report all levels disabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Info("repaint", "views", 3)
	if !strings.Contains(buf.String(), "repaint") {
		t.Errorf("log output %q does not contain message", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
