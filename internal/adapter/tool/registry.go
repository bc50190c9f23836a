package tool

import (
	"fmt"
	"log/slog"
	"sync"

	"whoogle-mcp/internal/domain"
)

// Registry holds the tools exposed over MCP, preserving registration order
// so the advertised tool list is stable across restarts.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]domain.Tool
	order  []string
	logger *slog.Logger
}

// NewRegistry creates an empty registry. With a non-nil logger, Register
// wraps each tool with JSON-schema parameter validation; a schema that fails
// to compile downgrades to an unvalidated registration with a warning.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		byName: make(map[string]domain.Tool),
		logger: logger,
	}
}

// Register adds a tool under its own name. Registering the same name twice
// is an error.
func (r *Registry) Register(t domain.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("tool %q already registered", name)
	}

	if r.logger != nil {
		if wrapped, err := WithSchemaValidation(t); err != nil {
			r.logger.Warn("schema validation disabled for tool",
				"tool", name, "error", err)
		} else {
			t = wrapped
		}
	}

	r.byName[name] = t
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (domain.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	if !ok {
		return nil, domain.NewDomainError("Registry.Get", domain.ErrToolNotFound, name)
	}
	return t, nil
}

// List returns the registered tools in registration order.
func (r *Registry) List() []domain.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tool, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Schemas returns every tool's schema in registration order.
func (r *Registry) Schemas() []domain.ToolSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ToolSchema, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name].Schema()
	}
	return out
}
