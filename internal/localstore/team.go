package localstore

import (
	"context"
	"fmt"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/team"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// MemberRepository implements team.Repository over the blob store.
type MemberRepository struct {
	store repository.BlobStore
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(store repository.BlobStore) *MemberRepository {
	return &MemberRepository{store: store}
}

func (r *MemberRepository) List(ctx context.Context) ([]team.Member, error) {
	return loadSlice[team.Member](ctx, r.store, keyTeamMembers)
}

func (r *MemberRepository) Insert(ctx context.Context, m *team.Member) error {
	members, err := r.List(ctx)
	if err != nil {
		return err
	}
	members = append(members, *m)
	if err := saveSlice(ctx, r.store, keyTeamMembers, members); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}

func (r *MemberRepository) Remove(ctx context.Context, id string) error {
	members, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range members {
		if members[i].ID == id {
			remaining := append(members[:i:i], members[i+1:]...)
			if err := saveSlice(ctx, r.store, keyTeamMembers, remaining); err != nil {
				return fmt.Errorf("failed to persist roster: %w", err)
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *MemberRepository) ReplaceAll(ctx context.Context, members []team.Member) error {
	if err := saveSlice(ctx, r.store, keyTeamMembers, members); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}
