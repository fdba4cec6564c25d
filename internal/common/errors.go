// Package common defines shared constants and sentinel errors used across
// the admin console layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Request-level errors.
	ErrRequestFailed = errors.New("Request failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDecode        = errors.New("unexpected response shape")

	// Form validation errors (detected before any network call).
	ErrFieldsRequired   = errors.New("username and password are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
