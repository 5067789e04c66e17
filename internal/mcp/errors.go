package mcp

import (
	"errors"
	"fmt"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// APIError represents a coded tool error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to coded API errors. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return &APIError{Code: "TASK_NOT_FOUND", Message: "task not found", RecoveryHint: "Check the task ID"}
	case errors.Is(err, task.ErrInvalidInput), errors.Is(err, task.ErrInvalidStatus):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error(), RecoveryHint: "Supply title, description and due date; status must be pending, in_progress or completed"}
	case errors.Is(err, team.ErrMemberNotFound):
		return &APIError{Code: "MEMBER_NOT_FOUND", Message: "team member not found", RecoveryHint: "Check the member ID"}
	case errors.Is(err, team.ErrBootstrapMember):
		return &APIError{Code: "BOOTSTRAP_MEMBER", Message: "the session user cannot be removed from the team"}
	case errors.Is(err, team.ErrInvalidInput):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error(), RecoveryHint: "Supply member name and email"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error(), RecoveryHint: "Supply a non-empty email"}
	case errors.Is(err, repository.ErrCorrupt):
		return &APIError{Code: "PERSISTENCE_ERROR", Message: "stored data could not be decoded"}
	default:
		return err
	}
}
