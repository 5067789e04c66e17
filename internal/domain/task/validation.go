package task

import "strings"

// ValidateCreateInput validates fields required to create a task.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrInvalidInput
	}
	if req.DueDate.IsZero() {
		return ErrInvalidInput
	}
	if req.Status != "" && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ValidateUpdateInput validates the supplied fields of a partial update.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrInvalidInput
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return ErrInvalidInput
	}
	if req.DueDate != nil && req.DueDate.IsZero() {
		return ErrInvalidInput
	}
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
