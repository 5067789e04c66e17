package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a malformed login or registration request.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
