// Package common defines shared constants and sentinel errors used across
// Stillpoint components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnavailable  = errors.New("temporarily unavailable")
	ErrorStaleRequest = errors.New("superseded by a newer request")

	// Directory / auth errors.
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorEmailNotVerified   = errors.New("email not verified")
	ErrorEmailTaken         = errors.New("email already registered")
	ErrInvalidToken         = errors.New("invalid token")

	// Container state errors.
	ErrorNoLeague     = errors.New("no active league")
	ErrorNoSession    = errors.New("not logged in")
	ErrorNoSubscriber = errors.New("missing subscription id")
)
