package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// Service handles task business logic: CRUD over the record store plus the
// filter engine. Every mutation carries an explicit acting identity.
type Service struct {
	tasks  Repository
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(tasks Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasks: tasks, logger: logger}
}

// Create validates the request, stamps attribution and timestamps, and
// appends the task to the active set.
func (s *Service) Create(ctx context.Context, req CreateRequest, actor auth.Identity) (*Task, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	now := time.Now().UTC()
	t := &Task{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		DueDate:       req.DueDate,
		Remarks:       req.Remarks,
		CreatedBy:     actor.AttributionName(),
		LastUpdatedBy: actor.AttributionName(),
		CreatedOn:     now,
		LastUpdatedOn: now,
	}

	if err := s.tasks.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Debug("task created", "id", t.ID, "actor", t.CreatedBy)
	return t, nil
}

// Update merges the supplied fields over the existing active task and
// re-stamps last_updated_by/on. Creation attribution is immutable.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, actor auth.Identity) (*Task, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}
	if req.Remarks != nil {
		updated.Remarks = *req.Remarks
	}
	updated.LastUpdatedBy = actor.AttributionName()
	updated.LastUpdatedOn = time.Now().UTC()

	if err := s.tasks.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return &updated, nil
}

// Get returns an active task by ID.
func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// List returns every active task. Callers apply their own sort.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// ListArchived returns every archived task.
func (s *Service) ListArchived(ctx context.Context) ([]Task, error) {
	tasks, err := s.tasks.ListArchived(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing archived tasks: %w", err)
	}
	return tasks, nil
}

// Delete permanently removes a task from whichever set holds it. A repeat
// delete of the same ID fails with ErrTaskNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	s.logger.Debug("task deleted", "id", id)
	return nil
}

// Archive moves a task from the active to the archived set.
func (s *Service) Archive(ctx context.Context, id string) error {
	if err := s.tasks.Archive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("archiving task: %w", err)
	}
	return nil
}

// Restore moves a task from the archived set back to the active set.
func (s *Service) Restore(ctx context.Context, id string) error {
	if err := s.tasks.Restore(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("restoring task: %w", err)
	}
	return nil
}

// Search evaluates the filter against the active set. Output order is the
// store's insertion order.
func (s *Service) Search(ctx context.Context, f Filter) ([]Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	return f.Apply(tasks), nil
}

// Stats summarizes the active set. A task is overdue when its due date is
// before now and it isn't completed.
func (s *Service) Stats(ctx context.Context, now time.Time) (Stats, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("computing stats: %w", err)
	}

	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
		if t.Status != StatusCompleted && t.DueDate.Before(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// Upcoming returns not-completed tasks due at or after now, soonest first,
// capped at limit (5 when limit is zero or negative).
func (s *Service) Upcoming(ctx context.Context, now time.Time, limit int) ([]Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming tasks: %w", err)
	}

	if limit <= 0 {
		limit = 5
	}

	upcoming := make([]Task, 0, limit)
	for _, t := range tasks {
		if t.Status == StatusCompleted || t.DueDate.Before(now) {
			continue
		}
		upcoming = append(upcoming, t)
	}
	SortByDueDate(upcoming)
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}
