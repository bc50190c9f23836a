package tool

import (
	"context"

	"whoogle-mcp/internal/domain"
)

// SearchBackend abstracts a web search engine. Unlike PageFetcher, a backend
// failure is a hard error: without the result list there is nothing to
// degrade to, so the error propagates to the caller.
type SearchBackend interface {
	Search(ctx context.Context, query string) (*domain.SearchResponse, error)
	// Name returns the backend identifier (e.g. "whoogle").
	Name() string
}
