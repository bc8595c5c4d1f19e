package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrInvalidEvent    = errors.New("invalid navigation event")
	ErrSessionNotFound = errors.New("navigation session not found")
	ErrLinksSource     = errors.New("navigation links unavailable")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
