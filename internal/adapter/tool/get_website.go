package tool

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"whoogle-mcp/internal/domain"
	"whoogle-mcp/internal/infra/tracer"
)

// GetWebsiteTool fetches a single page and returns its extracted text as a
// plain string. Earlier revisions of this server returned a one-element JSON
// array here; the string shape is the canonical one now.
type GetWebsiteTool struct {
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewGetWebsiteTool creates the get_website tool.
func NewGetWebsiteTool(fetcher PageFetcher, logger *slog.Logger) *GetWebsiteTool {
	return &GetWebsiteTool{fetcher: fetcher, logger: logger}
}

func (t *GetWebsiteTool) Name() string { return "get_website" }
func (t *GetWebsiteTool) Description() string {
	return "Fetch a single web page and return its readable text"
}

func (t *GetWebsiteTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"url": {"type": "string", "description": "The http(s) URL to fetch"}
			},
			"required": ["url"]
		}`),
	}
}

type getWebsiteParams struct {
	URL string `json:"url"`
}

func (t *GetWebsiteTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.get_website", t.logger, params,
		func(ctx context.Context, span trace.Span, p getWebsiteParams) (any, error) {
			if err := ValidateAll(
				RequireField("url", p.URL),
				ValidateURL("url", p.URL),
			); err != nil {
				return nil, domain.NewDomainError("GetWebsiteTool.Execute",
					domain.ErrInvalidInput, err.Error())
			}

			span.SetAttributes(tracer.StringAttr("tool.url", p.URL))

			// Fetch failures come back inside Content, so the tool result is
			// a success carrying the failure text. That is the contract.
			page := t.fetcher.Fetch(ctx, p.URL)

			t.logger.Debug("get_website completed", "url", p.URL, "chars", len(page.Content))
			return page.Content, nil
		},
	)
}
