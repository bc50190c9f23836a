package mcphost

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"whoogle-mcp/internal/adapter/tool"
	"whoogle-mcp/internal/domain"
)

type fakeTool struct {
	name       string
	result     *domain.ToolResult
	err        error
	lastParams json.RawMessage
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake tool for tests" }
func (f *fakeTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        f.name,
		Description: f.Description(),
		Parameters:  json.RawMessage(`{"type":"object","properties":{"q":{"type":"string"}}}`),
	}
}

func (f *fakeTool) Execute(_ context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	f.lastParams = params
	return f.result, f.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// textOf extracts the single text content block from an MCP result.
func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestHandlerTextResult(t *testing.T) {
	ft := &fakeTool{name: "echo", result: &domain.ToolResult{Content: "hello Tältplats"}}
	h := &Host{logger: newTestLogger()}

	res, err := h.handlerFor(ft)(context.Background(), callRequest(map[string]any{"q": "hi"}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatal("unexpected error result")
	}
	if got := textOf(t, res); got != "hello Tältplats" {
		t.Errorf("text = %q", got)
	}

	// Arguments reach the tool as a JSON object.
	var decoded map[string]any
	if err := json.Unmarshal(ft.lastParams, &decoded); err != nil {
		t.Fatalf("params not JSON: %v", err)
	}
	if decoded["q"] != "hi" {
		t.Errorf("params = %v", decoded)
	}
}

func TestHandlerErrorResult(t *testing.T) {
	ft := &fakeTool{name: "boom", result: &domain.ToolResult{
		Content: "query must not be empty",
		IsError: true,
	}}
	h := &Host{logger: newTestLogger()}

	res, err := h.handlerFor(ft)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Fatal("expected MCP error result")
	}
	if got := textOf(t, res); got != "query must not be empty" {
		t.Errorf("text = %q", got)
	}
}

func TestHandlerExecuteError(t *testing.T) {
	wantErr := errors.New("protocol-level failure")
	ft := &fakeTool{name: "broken", err: wantErr}
	h := &Host{logger: newTestLogger()}

	_, err := h.handlerFor(ft)(context.Background(), callRequest(nil))
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestNewRegistersAllTools(t *testing.T) {
	reg := tool.NewRegistry(nil)
	for _, name := range []string{"web_search", "get_website"} {
		if err := reg.Register(&fakeTool{name: name, result: &domain.ToolResult{Content: "ok"}}); err != nil {
			t.Fatal(err)
		}
	}

	h := New("test-server", "0.0.1", reg, newTestLogger())
	if h.srv == nil {
		t.Fatal("no MCP server constructed")
	}
}
