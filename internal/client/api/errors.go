package api

import "errors"

// Sentinel errors shared across the client. Callers match them with errors.Is
// and translate them into user-facing messages at the screen boundary.
var (
	// ErrUnavailable covers transport failures and unexpected server errors
	// on any remote call.
	ErrUnavailable = errors.New("store api unavailable")

	// ErrNotFound means the remote call itself succeeded but returned no
	// record (e.g. product detail for an unknown id).
	ErrNotFound = errors.New("not found")

	// ErrBadCredentials means the remote explicitly rejected the
	// username/password pair (no token issued).
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrValidation means a required field was empty after trimming.
	ErrValidation = errors.New("required field missing")

	// ErrUserNotFound means the username matched no directory entry.
	ErrUserNotFound = errors.New("user not in directory")
)
