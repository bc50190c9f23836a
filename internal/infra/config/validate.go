package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a *ValidationError
// when one or more problems are found, allowing callers to inspect all issues.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateSearch(cfg, ve)
	validateFetch(cfg, ve)
	validateLogger(cfg, ve)
	validateTracer(cfg, ve)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateSearch(cfg *Config, ve *ValidationError) {
	if cfg.Search.BaseURL == "" {
		ve.Add("search.base_url must not be empty")
	} else if u, err := url.Parse(cfg.Search.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		ve.Add("search.base_url %q is not an absolute URL", cfg.Search.BaseURL)
	}
	if cfg.Search.Timeout <= 0 {
		ve.Add("search.timeout must be positive")
	}
	if cfg.Search.MaxLinks <= 0 {
		ve.Add("search.max_links must be positive")
	}
}

func validateFetch(cfg *Config, ve *ValidationError) {
	switch cfg.Fetch.Strategy {
	case "scrape":
	case "tavily":
		if cfg.Fetch.TavilyAPIKey == "" {
			ve.Add("fetch.strategy is \"tavily\" but no tavily_api_key / TAVILY_API_KEY set")
		}
	default:
		ve.Add("fetch.strategy %q unknown (want: scrape, tavily)", cfg.Fetch.Strategy)
	}
	if cfg.Fetch.Timeout <= 0 {
		ve.Add("fetch.timeout must be positive")
	}
	if cfg.Fetch.WordLimit <= 0 {
		ve.Add("fetch.word_limit must be positive")
	}
	if cfg.Fetch.TavilyWordLimit <= 0 {
		ve.Add("fetch.tavily_word_limit must be positive")
	}
}

func validateLogger(cfg *Config, ve *ValidationError) {
	switch strings.ToLower(cfg.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		ve.Add("logger.level %q unknown", cfg.Logger.Level)
	}
	switch strings.ToLower(cfg.Logger.Format) {
	case "text", "json":
	default:
		ve.Add("logger.format %q unknown (want: text, json)", cfg.Logger.Format)
	}
}

func validateTracer(cfg *Config, ve *ValidationError) {
	switch cfg.Tracer.Exporter {
	case "stdout", "noop", "":
	default:
		ve.Add("tracer.exporter %q unknown (want: stdout, noop)", cfg.Tracer.Exporter)
	}
}
