package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist in the expected set.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidInput indicates invalid input for task operations.
	ErrInvalidInput = errors.New("invalid task input")
	// ErrInvalidStatus indicates an unknown task status value.
	ErrInvalidStatus = errors.New("invalid task status")
)
