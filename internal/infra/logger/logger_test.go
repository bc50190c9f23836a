package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"whoogle-mcp/internal/infra/config"
)

func TestNewTextLoggerToStderr(t *testing.T) {
	lg, closer, err := New(config.LoggerConfig{Level: "info", Format: "text", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	if lg == nil {
		t.Fatal("nil logger")
	}
}

func TestNewJSONLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	lg, closer, err := New(config.LoggerConfig{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatal(err)
	}

	lg.Debug("fetch completed", "url", "http://example.com")
	if err := closer(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"fetch completed"`) {
		t.Errorf("log file missing JSON record: %s", data)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := levelFor(tt.in); got != tt.want {
			t.Errorf("levelFor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewBadOutputPath(t *testing.T) {
	_, _, err := New(config.LoggerConfig{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Error("expected error for unwritable output path")
	}
}
