package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if l := New(slog.LevelInfo); l == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  []string
		skip  []string
	}{
		{"debug", slog.LevelDebug, []string{"msg=debug", "msg=info", "msg=warn", "msg=error"}, nil},
		{"info", slog.LevelInfo, []string{"msg=info", "msg=warn", "msg=error"}, []string{"msg=debug"}},
		{"warn", slog.LevelWarn, []string{"msg=warn", "msg=error"}, []string{"msg=debug", "msg=info"}},
		{"error", slog.LevelError, []string{"msg=error"}, []string{"msg=debug", "msg=info", "msg=warn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			l := NewLogger(tt.level, buf)
			l.Debug("debug")
			l.Info("info")
			l.Warn("warn")
			l.Error("error")

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("expected %q in output %q", w, buf.String())
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(buf.String(), s) {
					t.Errorf("did not expect %q in output %q", s, buf.String())
				}
			}
		})
	}
}

func TestErr(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := NewLogger(slog.LevelDebug, buf)
	l.Error("fetch failed", Err(errors.New("connection refused")))

	if !strings.Contains(buf.String(), `error="connection refused"`) {
		t.Errorf("output = %q, want error attribute", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "oahu-surf.log")
	l, f, err := NewFileLogger(slog.LevelInfo, path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	l.Info("loaded report", slog.Int("days", 5))
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "days=5") {
		t.Errorf("log file = %q, want days=5", data)
	}
}

func TestDiscard(t *testing.T) {
	// must not panic
	Discard().Error("dropped", Err(errors.New("x")))
}
