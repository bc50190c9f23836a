// whoogle-mcp is an MCP server exposing web_search and get_website tools
// backed by a self-hosted Whoogle instance.
//
// Usage:
//
//	whoogle-mcp [config.yaml]
//
// With no argument, configuration comes from defaults and environment
// variables (WHOOGLE_BASE_URL, TAVILY_API_KEY, WHOOGLEMCP_*).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"whoogle-mcp/internal/adapter/tool"
	"whoogle-mcp/internal/infra/config"
	"whoogle-mcp/internal/infra/logger"
	"whoogle-mcp/internal/infra/mcphost"
	"whoogle-mcp/internal/infra/tracer"
)

const (
	serverName    = "whoogle-web-search"
	serverVersion = "1.1.0"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			showUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := ""
	if len(os.Args) >= 2 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "close log output: %v\n", err)
		}
	}()

	ctx := context.Background()
	shutdownTracer, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	backend := tool.NewWhoogleBackend(cfg.Search.BaseURL,
		&http.Client{Timeout: cfg.Search.Timeout}, log)
	fetcher := newFetcher(cfg.Fetch, log)

	reg := tool.NewRegistry(log)
	if err := reg.Register(tool.NewWebSearchTool(backend, fetcher,
		cfg.Search.MaxLinks, cfg.Search.ExcludedDomains, log)); err != nil {
		return err
	}
	if err := reg.Register(tool.NewGetWebsiteTool(fetcher, log)); err != nil {
		return err
	}

	log.Info("starting",
		"backend", backend.Name(),
		"base_url", cfg.Search.BaseURL,
		"fetch_strategy", fetcher.Name(),
		"max_links", cfg.Search.MaxLinks,
	)

	return mcphost.New(serverName, serverVersion, reg, log).ServeStdio()
}

// newFetcher selects the page-fetch strategy. Config validation has already
// rejected unknown strategies and a missing Tavily key.
func newFetcher(cfg config.FetchConfig, log *slog.Logger) tool.PageFetcher {
	if cfg.Strategy == "tavily" {
		return tool.NewTavilyFetcher(cfg, log)
	}
	return tool.NewScrapeFetcher(cfg, log)
}

func showUsage() {
	fmt.Print(`whoogle-mcp — MCP server for Whoogle web search

Usage:
  whoogle-mcp [config.yaml]

Tools:
  web_search   search the web, enrich top results with extracted page text
  get_website  fetch a single page and return its readable text

Environment:
  WHOOGLE_BASE_URL           search backend (default http://whoogle-search:5000)
  TAVILY_API_KEY             extraction service key (tavily strategy only)
  WHOOGLEMCP_FETCH_STRATEGY  scrape (default) or tavily
  WHOOGLEMCP_SEARCH_MAX_LINKS  pages fetched per search (default 3)
  WHOOGLEMCP_LOGGER_LEVEL    debug, info, warn, error
  WHOOGLEMCP_TRACER_ENABLED  "true" to enable tracing
  WHOOGLEMCP_TRACER_EXPORTER stdout or noop
`)
}
