package explore

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound is returned by a LocationStore when no row exists for
// the requested search query.
var ErrLocationNotFound = errors.New("no stored location for query")

// TransportError wraps a failed outbound provider call: unreachable host,
// non-2xx status, or an open circuit breaker.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NormalizationError wraps an unexpected provider payload shape, such as a
// geocode response with zero results.
type NormalizationError struct {
	Kind string
	Err  error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s: %v", e.Kind, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

// StoreError wraps a failed relational operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
