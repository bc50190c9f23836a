package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"whoogle-mcp/internal/domain"
	"whoogle-mcp/internal/infra/tracer"
)

// WebSearchTool runs a web search and enriches the first maxLinks results
// with fetched page text. Page fetches are sequential and best-effort; a
// search backend failure fails the whole call.
type WebSearchTool struct {
	backend  SearchBackend
	fetcher  PageFetcher
	maxLinks int
	excluded []string
	logger   *slog.Logger
}

// NewWebSearchTool creates the web_search tool. excluded is a list of domain
// substrings; any result whose URL contains one is dropped before enrichment.
func NewWebSearchTool(backend SearchBackend, fetcher PageFetcher, maxLinks int, excluded []string, logger *slog.Logger) *WebSearchTool {
	return &WebSearchTool{
		backend:  backend,
		fetcher:  fetcher,
		maxLinks: maxLinks,
		excluded: excluded,
		logger:   logger,
	}
}

func (t *WebSearchTool) Name() string { return "web_search" }
func (t *WebSearchTool) Description() string {
	return "Search the web and return results enriched with the extracted text of the top pages, as JSON"
}

func (t *WebSearchTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "The search query"}
			},
			"required": ["query"]
		}`),
	}
}

type webSearchParams struct {
	Query string `json:"query"`
}

func (t *WebSearchTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.web_search", t.logger, params,
		func(ctx context.Context, span trace.Span, p webSearchParams) (any, error) {
			query := strings.TrimSpace(p.Query)
			if query == "" {
				return nil, domain.NewDomainError("WebSearchTool.Execute",
					domain.ErrInvalidInput, "query must not be empty")
			}

			span.SetAttributes(tracer.StringAttr("tool.query", query))

			// Backend failure is fatal for the call: no result list, no
			// partial response.
			resp, err := t.backend.Search(ctx, query)
			if err != nil {
				return nil, err
			}

			results := t.filterExcluded(resp.Results)

			n := t.maxLinks
			if len(results) < n {
				n = len(results)
			}
			span.SetAttributes(tracer.IntAttr("tool.results", n))

			// Sequential, one page at a time. Fetch failures land in the
			// content field; they never abort the loop.
			for i := 0; i < n; i++ {
				page := t.fetcher.Fetch(ctx, results[i].URL)
				results[i].Content = page.Content
				results[i].Excerpt = page.Excerpt
			}
			results = results[:n]

			payload := make(map[string]any, len(resp.Meta)+1)
			for k, v := range resp.Meta {
				payload[k] = v
			}
			payload["results"] = encodeResults(results)

			data, err := MarshalIndentNoEscape(payload)
			if err != nil {
				return nil, domain.WrapOp("encode response", err)
			}

			t.logger.Debug("web search completed", "query", query, "results", n)
			return string(data), nil
		},
	)
}

// filterExcluded drops results whose URL contains a blocklisted domain
// substring, preserving the order of the rest.
func (t *WebSearchTool) filterExcluded(results []domain.SearchResult) []domain.SearchResult {
	if len(t.excluded) == 0 {
		return results
	}
	kept := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		if t.urlExcluded(r.URL) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func (t *WebSearchTool) urlExcluded(url string) bool {
	for _, d := range t.excluded {
		if strings.Contains(url, d) {
			return true
		}
	}
	return false
}

// encodeResults converts results to their wire shape. Backend fields that
// were not modelled (Extra) are passed through; title/url/content/excerpt
// overwrite any extras of the same name.
func encodeResults(results []domain.SearchResult) []map[string]any {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		entry := make(map[string]any, len(r.Extra)+4)
		for k, v := range r.Extra {
			entry[k] = v
		}
		entry["title"] = r.Title
		entry["url"] = r.URL
		entry["content"] = r.Content
		if r.Excerpt != "" {
			entry["excerpt"] = r.Excerpt
		}
		out = append(out, entry)
	}
	return out
}
