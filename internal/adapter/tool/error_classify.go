package tool

import (
	"errors"
	"strings"

	"whoogle-mcp/internal/domain"
)

// retryableSentinels lists domain errors that indicate transient failures.
// The shim itself never retries; retryability is surfaced as metadata so the
// tool host can decide.
var retryableSentinels = []error{
	domain.ErrTimeout,
	domain.ErrSearchBackend,
	domain.ErrProviderError,
}

// retryablePatterns are substrings in error messages that indicate transient failures.
// Checked case-insensitively.
var retryablePatterns = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"timeout",
	"deadline exceeded",
	"temporarily unavailable",
	"service unavailable",
	"try again",
}

// classifyToolError returns true if the error is transient and the tool call
// may succeed on retry. Returns false for nil, permanent, or unknown errors.
func classifyToolError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return false
	}

	for _, sentinel := range retryableSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range retryablePatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
