// Package common defines shared constants and sentinel errors used across
// client and server layers of mailpassd. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors on the settings update path.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Password change errors surfaced to the end user.
	ErrCannotChangePassword = errors.New("cannot change password on mail server")
	ErrOldPasswordIncorrect = errors.New("old password incorrect")
)
