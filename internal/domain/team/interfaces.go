package team

import (
	"context"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
)

// Repository provides persistence for the team roster collection.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	Insert(ctx context.Context, m *Member) error
	Remove(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, members []Member) error
}

// TaskSource supplies the active task set for attribution counters.
type TaskSource interface {
	List(ctx context.Context) ([]task.Task, error)
}
