package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a lookup produced no matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the query is empty after trimming whitespace.
	ErrEmptyQuery = errors.New("empty query")

	// ErrBusy indicates an analysis is already in progress.
	ErrBusy = errors.New("analysis in progress")

	// ErrTransient indicates a recoverable failure of the recommendation
	// backend. Callers may retry.
	ErrTransient = errors.New("recommendation service temporarily unavailable")
)

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}
