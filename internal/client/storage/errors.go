package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialsNotFound indicates that no stored session exists
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrPartialCredentials indicates an attempt to save a credential
	// with one of the two tokens missing
	ErrPartialCredentials = errors.New("partial credentials: both tokens are required")
)
