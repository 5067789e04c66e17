package localstore

import (
	"context"
	"fmt"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// TaskRepository implements task.Repository over the blob store, keeping
// the active and archived sets as two independent collections.
type TaskRepository struct {
	store repository.BlobStore
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(store repository.BlobStore) *TaskRepository {
	return &TaskRepository{store: store}
}

// List returns every active task in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	return loadSlice[task.Task](ctx, r.store, keyTasks)
}

// ListArchived returns every archived task in insertion order.
func (r *TaskRepository) ListArchived(ctx context.Context) ([]task.Task, error) {
	return loadSlice[task.Task](ctx, r.store, keyArchivedTasks)
}

// Get returns an active task by ID.
func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Insert appends a task to the active set.
func (r *TaskRepository) Insert(ctx context.Context, t *task.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, *t)
	if err := saveSlice(ctx, r.store, keyTasks, tasks); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}

// Update replaces an active task in place.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = *t
			if err := saveSlice(ctx, r.store, keyTasks, tasks); err != nil {
				return fmt.Errorf("failed to persist tasks: %w", err)
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes a task from whichever set contains it.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	if remaining, found := removeByID(tasks, id); found {
		if err := saveSlice(ctx, r.store, keyTasks, remaining); err != nil {
			return fmt.Errorf("failed to persist tasks: %w", err)
		}
		return nil
	}

	archived, err := r.ListArchived(ctx)
	if err != nil {
		return err
	}
	if remaining, found := removeByID(archived, id); found {
		if err := saveSlice(ctx, r.store, keyArchivedTasks, remaining); err != nil {
			return fmt.Errorf("failed to persist archived tasks: %w", err)
		}
		return nil
	}

	return repository.ErrNotFound
}

// Archive moves a task from the active to the archived set.
func (r *TaskRepository) Archive(ctx context.Context, id string) error {
	return r.move(ctx, id, keyTasks, keyArchivedTasks)
}

// Restore moves a task from the archived set back to the active set.
func (r *TaskRepository) Restore(ctx context.Context, id string) error {
	return r.move(ctx, id, keyArchivedTasks, keyTasks)
}

// move transfers a task between collections. The destination is written
// before the source so an interrupted move duplicates rather than drops
// the record.
func (r *TaskRepository) move(ctx context.Context, id, fromKey, toKey string) error {
	source, err := loadSlice[task.Task](ctx, r.store, fromKey)
	if err != nil {
		return err
	}

	idx := -1
	for i := range source {
		if source[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}

	dest, err := loadSlice[task.Task](ctx, r.store, toKey)
	if err != nil {
		return err
	}
	dest = append(dest, source[idx])
	if err := saveSlice(ctx, r.store, toKey, dest); err != nil {
		return fmt.Errorf("failed to persist %q: %w", toKey, err)
	}

	remaining := append(source[:idx:idx], source[idx+1:]...)
	if err := saveSlice(ctx, r.store, fromKey, remaining); err != nil {
		return fmt.Errorf("failed to persist %q: %w", fromKey, err)
	}
	return nil
}

func removeByID(tasks []task.Task, id string) ([]task.Task, bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...), true
		}
	}
	return tasks, false
}
