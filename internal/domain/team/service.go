package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// Service manages the team roster.
type Service struct {
	members Repository
	tasks   TaskSource
	logger  *slog.Logger
}

// NewService creates a new team service. tasks may be nil when attribution
// counters aren't needed.
func NewService(members Repository, tasks TaskSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{members: members, tasks: tasks, logger: logger}
}

// AddRequest describes a roster addition.
type AddRequest struct {
	Name  string
	Email string
	Role  Role
}

// EnsureBootstrap seeds an empty roster with the session user as the
// irremovable Admin entry. A non-empty roster is left untouched.
func (s *Service) EnsureBootstrap(ctx context.Context, identity auth.Identity) error {
	members, err := s.members.List(ctx)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	if len(members) > 0 {
		return nil
	}

	name := identity.AttributionName()
	bootstrap := &Member{
		ID:         BootstrapMemberID,
		Name:       name,
		Email:      identity.Email,
		Role:       RoleAdmin,
		Avatar:     avatarFor(name),
		JoinedDate: time.Now().UTC(),
	}
	if err := s.members.Insert(ctx, bootstrap); err != nil {
		return fmt.Errorf("seeding roster: %w", err)
	}
	s.logger.Debug("roster bootstrapped", "name", name)
	return nil
}

// List returns the roster.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	return members, nil
}

// Add appends a new member to the roster.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Member, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = RoleMember
	}
	if !role.Valid() {
		return nil, ErrInvalidInput
	}

	m := &Member{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Role:       role,
		Avatar:     avatarFor(req.Name),
		JoinedDate: time.Now().UTC(),
	}
	if err := s.members.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("adding team member: %w", err)
	}
	return m, nil
}

// Remove deletes a member from the roster. The bootstrap member is refused.
func (s *Service) Remove(ctx context.Context, id string) error {
	if id == BootstrapMemberID {
		return ErrBootstrapMember
	}
	if err := s.members.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("removing team member: %w", err)
	}
	return nil
}

// SyncTaskCounts recomputes each member's completed/in-progress counters
// from task attribution and persists the updated roster.
func (s *Service) SyncTaskCounts(ctx context.Context) error {
	if s.tasks == nil {
		return nil
	}

	members, err := s.members.List(ctx)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	if len(members) == 0 {
		return nil
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	completed := make(map[string]int)
	inProgress := make(map[string]int)
	for _, t := range tasks {
		switch t.Status {
		case task.StatusCompleted:
			completed[t.CreatedBy]++
		case task.StatusInProgress:
			inProgress[t.CreatedBy]++
		}
	}

	for i := range members {
		members[i].TasksCompleted = completed[members[i].Name]
		members[i].TasksInProgress = inProgress[members[i].Name]
	}

	if err := s.members.ReplaceAll(ctx, members); err != nil {
		return fmt.Errorf("saving roster: %w", err)
	}
	return nil
}
