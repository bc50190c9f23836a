package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// SearchConfig holds search backend settings.
type SearchConfig struct {
	BaseURL         string        `yaml:"base_url"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxLinks        int           `yaml:"max_links"`
	ExcludedDomains []string      `yaml:"excluded_domains"`
}

// FetchConfig holds page fetcher settings. Strategy selects between local
// scraping ("scrape") and the Tavily extract API ("tavily").
// BlockPrivateHosts refuses page fetches that resolve to private or reserved
// addresses; it is off by default because many deployments fetch intranet
// pages on purpose.
type FetchConfig struct {
	Strategy          string        `yaml:"strategy"`
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	WordLimit         int           `yaml:"word_limit"`
	BlockPrivateHosts bool          `yaml:"block_private_hosts"`
	TavilyAPIKey      string        `yaml:"tavily_api_key"`
	TavilyBaseURL     string        `yaml:"tavily_base_url"`
	TavilyWordLimit   int           `yaml:"tavily_word_limit"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Output string `yaml:"output"` // stderr, stdout, or a file path
}

// TracerConfig holds tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // stdout, noop
}

// Config is the top-level application configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Logger LoggerConfig `yaml:"logger"`
	Tracer TracerConfig `yaml:"tracer"`
}

const (
	// DefaultWhoogleURL is used when neither config nor WHOOGLE_BASE_URL set
	// a backend location.
	DefaultWhoogleURL = "http://whoogle-search:5000"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Defaults returns a Config with all defaults applied.
func Defaults() *Config {
	return &Config{
		Search: SearchConfig{
			BaseURL:         DefaultWhoogleURL,
			Timeout:         10 * time.Second,
			MaxLinks:        3,
			ExcludedDomains: []string{"reddit.com"},
		},
		Fetch: FetchConfig{
			Strategy:        "scrape",
			UserAgent:       defaultUserAgent,
			Timeout:         120 * time.Second,
			WordLimit:       1000,
			TavilyBaseURL:   "https://api.tavily.com",
			TavilyWordLimit: 4000,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
	}
}

// Load reads a YAML config file (if it exists) and applies env var overrides.
// A missing file is not an error; defaults plus env are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
			// fall through to env overrides
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to cfg.
// WHOOGLE_BASE_URL and TAVILY_API_KEY are the documented integration
// variables; the WHOOGLEMCP_* ones cover the ambient knobs.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WHOOGLE_BASE_URL"); v != "" {
		cfg.Search.BaseURL = v
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		cfg.Fetch.TavilyAPIKey = v
	}
	if v := os.Getenv("WHOOGLEMCP_FETCH_STRATEGY"); v != "" {
		cfg.Fetch.Strategy = v
	}
	if v := os.Getenv("WHOOGLEMCP_SEARCH_MAX_LINKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Search.MaxLinks = n
		}
	}
	if v := os.Getenv("WHOOGLEMCP_FETCH_BLOCK_PRIVATE_HOSTS"); v == "true" {
		cfg.Fetch.BlockPrivateHosts = true
	}
	if v := os.Getenv("WHOOGLEMCP_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("WHOOGLEMCP_TRACER_ENABLED"); v == "true" {
		cfg.Tracer.Enabled = true
	}
	if v := os.Getenv("WHOOGLEMCP_TRACER_EXPORTER"); v != "" {
		cfg.Tracer.Exporter = v
	}
}
