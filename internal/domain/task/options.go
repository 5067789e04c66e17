package task

import "time"

// CreateRequest describes a task creation request.
type CreateRequest struct {
	Title       string
	Description string
	Status      Status
	DueDate     time.Time
	Remarks     string
}

// UpdateRequest describes a partial task update. Nil fields are retained
// from the existing record.
type UpdateRequest struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     *time.Time
	Remarks     *string
}
