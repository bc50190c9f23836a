package tool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"whoogle-mcp/internal/domain"
)

func execGetWebsite(t *testing.T, gw *GetWebsiteTool, params string) *domain.ToolResult {
	t.Helper()
	res, err := gw.Execute(context.Background(), json.RawMessage(params))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGetWebsiteSuccess(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]domain.PageContent{
		"http://example.com/page": {
			URL:     "http://example.com/page",
			Excerpt: "Once upon a time...",
			Content: "Once upon a time there was a page with Tältplats in it",
		},
	}}
	gw := NewGetWebsiteTool(fetcher, newTestLogger())

	res := execGetWebsite(t, gw, `{"url":"http://example.com/page"}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", res.Content)
	}

	// The content comes back as the extracted text itself, not a JSON document.
	want := "Once upon a time there was a page with Tältplats in it"
	if res.Content != want {
		t.Errorf("content = %q, want %q", res.Content, want)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "http://example.com/page" {
		t.Errorf("fetch calls = %v", fetcher.calls)
	}
}

func TestGetWebsiteInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params string
	}{
		{"missing url", `{}`},
		{"empty url", `{"url":""}`},
		{"relative url", `{"url":"/just/a/path"}`},
		{"bad scheme", `{"url":"ftp://example.com/file"}`},
		{"not a url", `{"url":"::::"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{}
			gw := NewGetWebsiteTool(fetcher, newTestLogger())

			res := execGetWebsite(t, gw, tt.params)
			if !res.IsError {
				t.Fatalf("expected error result, got %q", res.Content)
			}
			if len(fetcher.calls) != 0 {
				t.Errorf("invalid params must not trigger a fetch, got %v", fetcher.calls)
			}
		})
	}
}

func TestGetWebsiteFetchFailureIsContent(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]domain.PageContent{
		"http://down.example": {
			URL:     "http://down.example",
			Content: "failed to retrieve page: context deadline exceeded",
		},
	}}
	gw := NewGetWebsiteTool(fetcher, newTestLogger())

	res := execGetWebsite(t, gw, `{"url":"http://down.example"}`)
	if res.IsError {
		t.Fatalf("fetch failures surface as content, not errors: %s", res.Content)
	}
	if !strings.Contains(res.Content, "failed to retrieve page") {
		t.Errorf("content = %q", res.Content)
	}
}

func TestGetWebsiteSchemaAndName(t *testing.T) {
	gw := NewGetWebsiteTool(&stubFetcher{}, newTestLogger())
	if gw.Name() != "get_website" {
		t.Errorf("Name = %q", gw.Name())
	}
	if !strings.Contains(string(gw.Schema().Parameters), `"url"`) {
		t.Error("schema missing url property")
	}
}
