// Package logger builds the process-wide slog.Logger from configuration.
// stdout carries the MCP transport, so logs default to stderr; a file path
// can be given for deployments that rotate logs externally.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"whoogle-mcp/internal/infra/config"
)

// New builds a logger. The returned close function flushes and releases any
// file handle; it is a no-op for stderr/stdout.
func New(cfg config.LoggerConfig) (*slog.Logger, func() error, error) {
	out, closeFn, err := resolveOutput(cfg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}

	opts := &slog.HandlerOptions{Level: levelFor(cfg.Level)}
	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h), closeFn, nil
}

func levelFor(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func resolveOutput(target string) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	switch strings.ToLower(target) {
	case "stdout":
		return os.Stdout, nop, nil
	case "", "stderr":
		return os.Stderr, nop, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
