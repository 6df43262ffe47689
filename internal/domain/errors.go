package domain

import "errors"

var (
	// ErrNotConfigured is returned when search provider credentials are missing
	ErrNotConfigured = errors.New("search provider credentials not configured")

	// ErrSearchUnavailable is returned when the search provider cannot be reached
	ErrSearchUnavailable = errors.New("search provider unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSessionNotFound is returned when a session id has no stored state
	ErrSessionNotFound = errors.New("session not found")
)
