package common

import "errors"

// Sentinel errors shared by client and server layers. Callers match them
// with errors.Is.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors raised before any store access. Wrappers add the
	// offending field, e.g. fmt.Errorf("%w: dish name is required", ErrValidation).
	ErrValidation = errors.New("validation error")

	// Auth error for a malformed or rejected token.
	ErrInvalidToken = errors.New("invalid token")
)
