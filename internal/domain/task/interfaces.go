package task

import "context"

// Repository provides persistence for the active and archived task
// collections. Implementations rewrite a whole collection per mutation;
// a failed write must leave the prior state intact.
type Repository interface {
	List(ctx context.Context) ([]Task, error)
	ListArchived(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id string) (*Task, error)
	Insert(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
