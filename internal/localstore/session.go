package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
	"github.com/reddy1234arjun/taskmanagement/internal/domain/settings"
	"github.com/reddy1234arjun/taskmanagement/internal/repository"
)

// CredentialStore implements auth.CredentialRepository: the session
// identity under the "user" key and the opaque token under its own key.
type CredentialStore struct {
	store repository.BlobStore
}

// NewCredentialStore creates a new CredentialStore.
func NewCredentialStore(store repository.BlobStore) *CredentialStore {
	return &CredentialStore{store: store}
}

func (r *CredentialStore) SaveIdentity(ctx context.Context, identity auth.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	return r.store.Set(ctx, keyUser, data)
}

func (r *CredentialStore) Identity(ctx context.Context) (*auth.Identity, error) {
	data, ok, err := r.store.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var identity auth.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("decoding identity: %w", repository.ErrCorrupt)
	}
	return &identity, nil
}

func (r *CredentialStore) SaveToken(ctx context.Context, token string) error {
	return r.store.Set(ctx, keyToken, []byte(token))
}

func (r *CredentialStore) Token(ctx context.Context) (string, error) {
	data, ok, err := r.store.Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return string(data), nil
}

func (r *CredentialStore) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, keyUser); err != nil {
		return err
	}
	return r.store.Remove(ctx, keyToken)
}

// PreferenceStore implements settings.PreferenceRepository under the
// "userSettings" key.
type PreferenceStore struct {
	store repository.BlobStore
}

// NewPreferenceStore creates a new PreferenceStore.
func NewPreferenceStore(store repository.BlobStore) *PreferenceStore {
	return &PreferenceStore{store: store}
}

func (r *PreferenceStore) Save(ctx context.Context, prefs settings.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return r.store.Set(ctx, keySettings, data)
}

func (r *PreferenceStore) Load(ctx context.Context) (*settings.Preferences, error) {
	data, ok, err := r.store.Get(ctx, keySettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var prefs settings.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("decoding preferences: %w", repository.ErrCorrupt)
	}
	return &prefs, nil
}
