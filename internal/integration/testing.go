// Package integration holds opt-in tests that exercise the tools against
// live backends. They are skipped unless the relevant environment variables
// point at real services.
package integration

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

// Config holds integration test configuration from environment.
type Config struct {
	WhoogleURL   string
	TavilyAPIKey string
	TestTimeout  time.Duration
	SkipSlow     bool
}

// LoadConfig loads integration test configuration from environment.
func LoadConfig() *Config {
	return &Config{
		WhoogleURL:   os.Getenv("WHOOGLE_INTEGRATION_URL"),
		TavilyAPIKey: os.Getenv("TAVILY_API_KEY"),
		TestTimeout:  60 * time.Second,
		SkipSlow:     os.Getenv("SKIP_SLOW_TESTS") == "1",
	}
}

// SkipIfNoWhoogle skips the test when no live search backend is configured.
func SkipIfNoWhoogle(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg.WhoogleURL == "" {
		t.Skip("skipping: WHOOGLE_INTEGRATION_URL not set")
	}
}

// SkipIfNoTavily skips the test when no Tavily credentials are configured.
func SkipIfNoTavily(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg.TavilyAPIKey == "" {
		t.Skip("skipping: TAVILY_API_KEY not set")
	}
}

// SkipIfShort skips live tests in -short mode.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// TestLogger returns a logger that is silent unless -v is set.
func TestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
