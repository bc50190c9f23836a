// Package mcphost bridges the domain tool registry to an MCP stdio server.
// The MCP framework owns the serving loop and the wire protocol; this package
// only translates between domain.Tool and the mcp-go types.
package mcphost

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"whoogle-mcp/internal/adapter/tool"
	"whoogle-mcp/internal/domain"
)

// Host wraps an MCP server with tools from a registry.
type Host struct {
	srv    *server.MCPServer
	logger *slog.Logger
}

// New creates an MCP server exposing every tool in the registry. Each tool's
// JSON Schema is passed through to the protocol as-is.
func New(name, version string, reg *tool.Registry, logger *slog.Logger) *Host {
	srv := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)
	h := &Host{srv: srv, logger: logger}

	for _, t := range reg.List() {
		srv.AddTool(
			mcp.NewToolWithRawSchema(t.Name(), t.Description(), t.Schema().Parameters),
			h.handlerFor(t),
		)
		logger.Debug("tool registered with MCP host", "tool", t.Name())
	}
	return h
}

// handlerFor adapts a domain.Tool to the mcp-go handler signature. A
// ToolResult with IsError set maps to an MCP error result; a Go error from
// Execute is a protocol-level failure.
func (h *Host) handlerFor(t domain.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}

		result, err := t.Execute(ctx, args)
		if err != nil {
			return nil, err
		}
		if result.IsError {
			return mcp.NewToolResultError(result.Content), nil
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// ServeStdio runs the MCP serving loop over stdin/stdout until the client
// disconnects. It blocks.
func (h *Host) ServeStdio() error {
	h.logger.Info("serving MCP over stdio")
	return server.ServeStdio(h.srv)
}
