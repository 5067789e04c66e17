// Package mocks holds hand-written testify mocks for the domain
// repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
)

// TaskRepository is a mock for task.Repository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]task.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) ListArchived(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]task.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) Insert(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskRepository) Archive(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskRepository) Restore(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MemberRepository is a mock for team.Repository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) List(ctx context.Context) ([]team.Member, error) {
	args := m.Called(ctx)
	if members, ok := args.Get(0).([]team.Member); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemberRepository) Insert(ctx context.Context, member *team.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MemberRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MemberRepository) ReplaceAll(ctx context.Context, members []team.Member) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

// CredentialRepository is a mock for auth.CredentialRepository.
type CredentialRepository struct {
	mock.Mock
}

func (m *CredentialRepository) SaveIdentity(ctx context.Context, identity auth.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *CredentialRepository) Identity(ctx context.Context) (*auth.Identity, error) {
	args := m.Called(ctx)
	if identity, ok := args.Get(0).(*auth.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CredentialRepository) SaveToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *CredentialRepository) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *CredentialRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// PreferenceRepository is a mock for settings.PreferenceRepository.
type PreferenceRepository struct {
	mock.Mock
}

func (m *PreferenceRepository) Save(ctx context.Context, prefs settings.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *PreferenceRepository) Load(ctx context.Context) (*settings.Preferences, error) {
	args := m.Called(ctx)
	if prefs, ok := args.Get(0).(*settings.Preferences); ok {
		return prefs, args.Error(1)
	}
	return nil, args.Error(1)
}
