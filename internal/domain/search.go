package domain

// SearchResult is a single entry returned by the search backend.
// Extra carries backend fields that are not modelled explicitly so they
// survive a round trip through the response unchanged.
type SearchResult struct {
	Title   string
	URL     string
	Content string
	Excerpt string
	Extra   map[string]any
}

// SearchResponse is the decoded backend response. Meta holds every top-level
// field other than the result list, passed through to the caller as-is.
// Result order is the backend's order.
type SearchResponse struct {
	Results []SearchResult
	Meta    map[string]any
}

// PageContent is the outcome of fetching a single page. Fetch failures are
// folded into Content as a human-readable message rather than an error, so a
// bad page never aborts the caller.
type PageContent struct {
	URL     string
	Excerpt string
	Content string
}
