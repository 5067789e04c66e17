package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reddy1234arjun/taskmanagement/internal/blobstore"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/task"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

func sampleTask(id string) *task.Task {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &task.Task{
		ID:            id,
		Title:         "Title " + id,
		Description:   "Description " + id,
		Status:        task.StatusPending,
		DueDate:       now.AddDate(0, 0, 7),
		CreatedBy:     "alice",
		LastUpdatedBy: "alice",
		CreatedOn:     now,
		LastUpdatedOn: now,
	}
}

func TestTaskRepository_InsertGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	created := sampleTask("t1")
	require.NoError(t, repo.Insert(ctx, created))

	loaded, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, created, loaded)
}

func TestTaskRepository_EmptyStoreListsNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	_, err = repo.Get(ctx, "anything")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_UpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx, sampleTask("t1")))
	require.NoError(t, repo.Insert(ctx, sampleTask("t2")))

	updated := sampleTask("t1")
	updated.Status = task.StatusCompleted
	require.NoError(t, repo.Update(ctx, updated))

	loaded, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, task.StatusCompleted, loaded.Status)

	// Insertion order is preserved.
	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"t1", "t2"}, []string{tasks[0].ID, tasks[1].ID})

	require.ErrorIs(t, repo.Update(ctx, sampleTask("missing")), repository.ErrNotFound)
}

func TestTaskRepository_DeleteIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx, sampleTask("t1")))
	require.NoError(t, repo.Delete(ctx, "t1"))
	require.ErrorIs(t, repo.Delete(ctx, "t1"), repository.ErrNotFound)
}

func TestTaskRepository_DeleteReachesArchivedSet(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx, sampleTask("t1")))
	require.NoError(t, repo.Archive(ctx, "t1"))
	require.NoError(t, repo.Delete(ctx, "t1"))

	archived, err := repo.ListArchived(ctx)
	require.NoError(t, err)
	require.Empty(t, archived)
}

func TestTaskRepository_ArchiveRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	original := sampleTask("t1")
	require.NoError(t, repo.Insert(ctx, original))
	require.NoError(t, repo.Archive(ctx, "t1"))

	// Archived task is out of the active set.
	_, err := repo.Get(ctx, "t1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	archived, err := repo.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.Equal(t, *original, archived[0])

	require.NoError(t, repo.Restore(ctx, "t1"))

	restored, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, original, restored)

	archived, err = repo.ListArchived(ctx)
	require.NoError(t, err)
	require.Empty(t, archived)
}

func TestTaskRepository_ArchiveMissingFails(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(blobstore.NewMemoryStore())

	require.ErrorIs(t, repo.Archive(ctx, "missing"), repository.ErrNotFound)
	require.ErrorIs(t, repo.Restore(ctx, "missing"), repository.ErrNotFound)
}

func TestTaskRepository_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, keyTasks, []byte("not json")))

	repo := NewTaskRepository(store)
	_, err := repo.List(ctx)
	require.ErrorIs(t, err, repository.ErrCorrupt)
}
