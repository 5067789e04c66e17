package team

import "errors"

var (
	// ErrMemberNotFound indicates the member doesn't exist in the roster.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrBootstrapMember indicates an attempt to remove the session user's entry.
	ErrBootstrapMember = errors.New("cannot remove the bootstrap team member")
	// ErrInvalidInput indicates invalid input for roster operations.
	ErrInvalidInput = errors.New("invalid team member input")
)
