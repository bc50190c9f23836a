package tool

import (
	"context"

	"whoogle-mcp/internal/domain"
)

// PageFetcher retrieves a page's readable text. Implementations never return
// an error: any transport or extraction failure is written into the returned
// PageContent's Content field as a human-readable message, so one bad page
// cannot abort a caller iterating over many.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) domain.PageContent
	// Name returns the fetcher identifier (e.g. "scrape", "tavily").
	Name() string
}
