package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainErrorMessage(t *testing.T) {
	e := NewDomainError("WhoogleBackend.Search", ErrSearchBackend, "HTTP 502")
	msg := e.Error()
	if !strings.Contains(msg, "WhoogleBackend.Search") {
		t.Errorf("missing op in %q", msg)
	}
	if !strings.Contains(msg, "HTTP 502") {
		t.Errorf("missing detail in %q", msg)
	}

	// Without detail the format drops the middle section.
	e2 := NewDomainError("Registry.Get", ErrToolNotFound, "")
	if got, want := e2.Error(), "Registry.Get: tool not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	e := NewDomainError("WebSearchTool.Execute", ErrInvalidInput, "query must not be empty")
	if !errors.Is(e, ErrInvalidInput) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
	wrapped := fmt.Errorf("outer: %w", e)
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("errors.Is should match through additional wrapping")
	}
}

func TestWrapOp(t *testing.T) {
	if WrapOp("op", nil) != nil {
		t.Error("WrapOp(nil) should be nil")
	}
	err := WrapOp("fetch", ErrTimeout)
	if !errors.Is(err, ErrTimeout) {
		t.Error("WrapOp should preserve the sentinel")
	}
	if !strings.HasPrefix(err.Error(), "fetch: ") {
		t.Errorf("WrapOp prefix missing: %q", err.Error())
	}
}
