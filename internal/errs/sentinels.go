// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication (bad credentials or invalid session).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the acting user does not own the resource being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidToken indicates a tampered, malformed or expired bearer token.
	// Callers must not learn which of the three it was.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation indicates malformed or inconsistent request input.
	ErrValidation = errors.New("validation")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
