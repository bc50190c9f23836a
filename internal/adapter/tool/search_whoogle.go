package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"whoogle-mcp/internal/domain"
)

const maxSearchBodySize = 512 * 1024 // 512KB

// WhoogleBackend searches the web via a self-hosted Whoogle instance.
type WhoogleBackend struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewWhoogleBackend creates a search backend backed by a Whoogle instance.
func NewWhoogleBackend(baseURL string, client *http.Client, logger *slog.Logger) *WhoogleBackend {
	return &WhoogleBackend{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (b *WhoogleBackend) Name() string { return "whoogle" }

// Search issues GET {base}/search?q={query}&format=json. Non-2xx responses
// and transport errors are returned as errors, not folded into the response.
func (b *WhoogleBackend) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", query)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w (%w)", err, domain.ErrSearchBackend)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSearchBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewDomainError("WhoogleBackend.Search", domain.ErrSearchBackend,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	parsed, err := parseSearchResponse(body)
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	b.logger.Debug("whoogle search completed", "query", query, "results", len(parsed.Results))
	return parsed, nil
}

// parseSearchResponse decodes the backend JSON while preserving fields this
// shim does not model: unknown top-level keys land in Meta, unknown
// per-result keys in Extra, so they survive the round trip unchanged.
func parseSearchResponse(body []byte) (*domain.SearchResponse, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	out := &domain.SearchResponse{Meta: make(map[string]any)}
	for k, v := range payload {
		if k != "results" {
			out.Meta[k] = v
		}
	}

	rawResults, _ := payload["results"].([]any)
	for _, rr := range rawResults {
		entry, ok := rr.(map[string]any)
		if !ok {
			continue
		}
		res := domain.SearchResult{Extra: make(map[string]any)}
		for k, v := range entry {
			s, _ := v.(string)
			switch k {
			case "title":
				res.Title = s
			case "url", "href":
				// Whoogle emits href; url wins when both are present.
				if res.URL == "" || k == "url" {
					res.URL = s
				}
			case "content", "snippet":
				if res.Content == "" || k == "content" {
					res.Content = s
				}
			default:
				res.Extra[k] = v
			}
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
