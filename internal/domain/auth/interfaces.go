package auth

import "context"

// CredentialRepository is the client-side credential cache: it retains the
// session identity and the last issued token between calls.
type CredentialRepository interface {
	SaveIdentity(ctx context.Context, identity Identity) error
	// Identity returns the persisted identity, or nil when no session exists.
	Identity(ctx context.Context) (*Identity, error)
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	// Clear removes the persisted identity and token.
	Clear(ctx context.Context) error
}
