package tool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"whoogle-mcp/internal/domain"
	"whoogle-mcp/internal/infra/config"
	"whoogle-mcp/internal/security"
)

const (
	maxFetchBodySize = 2 * 1024 * 1024 // 2MB
	excerptLen       = 200
)

// ScrapeFetcher fetches a page with a plain GET and extracts its text
// locally. This is the default page-fetch strategy.
type ScrapeFetcher struct {
	client    *http.Client
	userAgent string
	wordLimit int
	logger    *slog.Logger
}

// NewScrapeFetcher creates a local fetch+extract page fetcher.
func NewScrapeFetcher(cfg config.FetchConfig, logger *slog.Logger) *ScrapeFetcher {
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.BlockPrivateHosts {
		client.Transport = security.NewGuardedTransport()
	}
	return &ScrapeFetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		wordLimit: cfg.WordLimit,
		logger:    logger,
	}
}

func (f *ScrapeFetcher) Name() string { return "scrape" }

func (f *ScrapeFetcher) Fetch(ctx context.Context, pageURL string) domain.PageContent {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return failedPage(pageURL, fmt.Sprintf("invalid URL: %v", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("page fetch failed", "url", pageURL, "error", err)
		return failedPage(pageURL, fmt.Sprintf("failed to retrieve page: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Debug("page fetch non-2xx", "url", pageURL, "status", resp.StatusCode)
		return failedPage(pageURL, fmt.Sprintf("failed to retrieve page: HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBodySize))
	if err != nil {
		return failedPage(pageURL, fmt.Sprintf("failed to read page body: %v", err))
	}

	text := ExtractText(string(body))
	f.logger.Debug("page fetch completed", "url", pageURL, "bytes", len(body), "words", f.wordLimit)

	return domain.PageContent{
		URL:     pageURL,
		Excerpt: Excerpt(text, excerptLen),
		Content: TruncateWords(text, f.wordLimit),
	}
}

// failedPage folds a fetch failure into the content field. The message is the
// payload; callers must still get a well-formed PageContent.
func failedPage(pageURL, msg string) domain.PageContent {
	return domain.PageContent{
		URL:     pageURL,
		Content: msg,
	}
}
