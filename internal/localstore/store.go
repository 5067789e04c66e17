// Package localstore persists each collection as a self-contained JSON
// array blob under a well-known key, mirroring the app's historical
// local-storage layout. Every mutation rewrites the affected blob whole.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// Blob keys. These names are part of the persisted state layout and must
// not change, or existing stores stop loading.
const (
	keyTasks         = "tasks"
	keyArchivedTasks = "archivedTasks"
	keyTeamMembers   = "teamMembers"
	keyUser          = "user"
	keyToken         = "taskmaster_token"
	keySettings      = "userSettings"
)

// loadSlice decodes the collection under key. An absent key is an empty
// collection, not an error.
func loadSlice[T any](ctx context.Context, store repository.BlobStore, key string) ([]T, error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", key, repository.ErrCorrupt)
	}
	return items, nil
}

func saveSlice[T any](ctx context.Context, store repository.BlobStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	return store.Set(ctx, key, data)
}
