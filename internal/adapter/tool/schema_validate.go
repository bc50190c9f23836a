package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"whoogle-mcp/internal/domain"
)

// validatedTool decorates a Tool so that params failing the tool's declared
// JSON Schema are rejected before Execute runs.
type validatedTool struct {
	domain.Tool
	schema *jsonschema.Schema
}

// WithSchemaValidation wraps t with parameter validation against its own
// schema. Tools without a schema are returned unchanged; a schema that fails
// to compile is an error.
func WithSchemaValidation(t domain.Tool) (domain.Tool, error) {
	raw := t.Schema().Parameters
	if len(raw) == 0 || string(raw) == "null" {
		return t, nil
	}

	schema, err := jsonschema.CompileString(t.Name()+".schema.json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema for %q: %w", t.Name(), err)
	}
	return &validatedTool{Tool: t, schema: schema}, nil
}

func (v *validatedTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	var decoded any
	if err := json.Unmarshal(params, &decoded); err != nil {
		return &domain.ToolResult{
			IsError: true,
			Content: fmt.Sprintf("invalid JSON: %v", err),
		}, nil
	}
	if err := v.schema.Validate(decoded); err != nil {
		return &domain.ToolResult{
			IsError: true,
			Content: fmt.Sprintf("schema validation failed: %v", err),
		}, nil
	}
	return v.Tool.Execute(ctx, params)
}
