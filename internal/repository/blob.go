package repository

import "context"

// BlobStore is the key-value persistence primitive behind every durable
// collection. Values are opaque serialized blobs; a whole blob is read or
// replaced per call, never patched in place.
type BlobStore interface {
	// Get returns the blob stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, data []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
