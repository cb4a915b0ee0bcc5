// Package common defines shared sentinel errors and small helpers used across
// the CEBIP storage, session and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Configuration errors.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
	ErrUnsupportedFormat  = errors.New("unsupported export format")

	// Token errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
