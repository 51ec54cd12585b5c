package services

import "errors"

// Error taxonomy. Anything not wrapping these sentinels is a backend
// failure and propagates untouched — retries belong to the caller.
var (
	// ErrNotFound marks a queried entity as absent. Read paths that
	// must treat absence as "empty" handle this internally and never
	// surface it.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks malformed input (NaN weight, negative
	// calories, unknown enum value). Rejected before persistence.
	ErrInvalidInput = errors.New("invalid input")
)
