package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"whoogle-mcp/internal/domain"
	"whoogle-mcp/internal/infra/config"
)

const maxExtractBodySize = 4 * 1024 * 1024 // 4MB

// tavilyExtractResponse models the relevant portion of the Tavily extract
// API response. Failures come back as entries in failed_results rather than
// HTTP errors.
type tavilyExtractResponse struct {
	Results []struct {
		URL        string `json:"url"`
		RawContent string `json:"raw_content"`
	} `json:"results"`
	FailedResults []struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	} `json:"failed_results"`
}

// TavilyFetcher delegates page extraction to the Tavily extract API,
// requesting markdown output. No local HTML parsing happens on this path.
type TavilyFetcher struct {
	client    *http.Client
	apiKey    string
	baseURL   string
	wordLimit int
	logger    *slog.Logger
}

// NewTavilyFetcher creates a delegated-extraction page fetcher.
func NewTavilyFetcher(cfg config.FetchConfig, logger *slog.Logger) *TavilyFetcher {
	return &TavilyFetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		apiKey:    cfg.TavilyAPIKey,
		baseURL:   strings.TrimRight(cfg.TavilyBaseURL, "/"),
		wordLimit: cfg.TavilyWordLimit,
		logger:    logger,
	}
}

func (f *TavilyFetcher) Name() string { return "tavily" }

func (f *TavilyFetcher) Fetch(ctx context.Context, pageURL string) domain.PageContent {
	reqBody, err := json.Marshal(map[string]any{
		"urls":   []string{pageURL},
		"format": "markdown",
	})
	if err != nil {
		return failedPage(pageURL, fmt.Sprintf("encode extract request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/extract", bytes.NewReader(reqBody))
	if err != nil {
		return failedPage(pageURL, fmt.Sprintf("invalid URL: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("extract request failed", "url", pageURL, "error", err)
		return failedPage(pageURL, fmt.Sprintf("failed to retrieve page: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxExtractBodySize))
	if err != nil {
		return failedPage(pageURL, fmt.Sprintf("failed to read extract response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("extract non-200", "url", pageURL, "status", resp.StatusCode)
		return failedPage(pageURL, fmt.Sprintf("extraction service returned HTTP %d", resp.StatusCode))
	}

	var extracted tavilyExtractResponse
	if err := json.Unmarshal(body, &extracted); err != nil {
		return failedPage(pageURL, fmt.Sprintf("parse extract response: %v", err))
	}

	// The service reports per-URL failures alongside successes; surface the
	// first failure's message verbatim as the content.
	if len(extracted.FailedResults) > 0 {
		return failedPage(pageURL, extracted.FailedResults[0].Error)
	}
	if len(extracted.Results) == 0 {
		return failedPage(pageURL, "extraction service returned no content")
	}

	raw := extracted.Results[0].RawContent
	f.logger.Debug("extract completed", "url", pageURL, "bytes", len(raw))

	return domain.PageContent{
		URL:     pageURL,
		Excerpt: Excerpt(raw, excerptLen),
		Content: TruncateWords(raw, f.wordLimit),
	}
}
