package task

import "time"

// Status represents the workflow status of a task
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is the persisted task entity. JSON field names follow the historical
// wire layout so existing serialized collections load unchanged.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"task_title"`
	Description   string    `json:"task_description"`
	Status        Status    `json:"task_status"`
	DueDate       time.Time `json:"task_due_date"`
	Remarks       string    `json:"task_remarks,omitempty"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedBy string    `json:"last_updated_by"`
	CreatedOn     time.Time `json:"created_on"`
	LastUpdatedOn time.Time `json:"last_updated_on"`
}

// Stats summarizes the active set for dashboard views.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}
