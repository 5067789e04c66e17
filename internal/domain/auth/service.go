package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service simulates authentication round-trips. Every login and registration
// succeeds; no credentials are ever verified. Tokens are minted fresh on each
// login and are opaque to callers.
type Service struct {
	creds      CredentialRepository
	signingKey []byte
	logger     *slog.Logger
}

// NewService creates a new auth service. When signingKey is nil a random
// per-process key is generated; tokens then stop being comparable across
// restarts, which is fine because nothing verifies them.
func NewService(creds CredentialRepository, signingKey []byte, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if len(signingKey) == 0 {
		signingKey = make([]byte, 32)
		_, _ = rand.Read(signingKey)
	}
	return &Service{creds: creds, signingKey: signingKey, logger: logger}
}

// Login issues a fresh token for the given email. The display name comes
// from the persisted identity when its email matches; otherwise it is
// derived from the email local-part.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrInvalidCredentials
	}

	name := localPart(email)
	if prior, err := s.creds.Identity(ctx); err != nil {
		return nil, fmt.Errorf("loading identity: %w", err)
	} else if prior != nil && prior.Email == email && prior.Name != "" {
		name = prior.Name
	}

	token, err := s.mintToken(email, name)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	identity := Identity{Name: name, Email: email}
	if err := s.creds.SaveIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("saving identity: %w", err)
	}
	if err := s.creds.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}

	s.logger.Debug("login", "email", email)
	return &Session{Token: token, User: identity}, nil
}

// Register records the identity. There is no account store, so duplicate
// registration silently succeeds; a subsequent login keeps the registered
// name.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Identity, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrInvalidCredentials
	}

	identity := Identity{Name: name, Email: email}
	if err := s.creds.SaveIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("saving identity: %w", err)
	}

	s.logger.Debug("registered", "email", email)
	return &identity, nil
}

// Logout clears the persisted identity and token.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// CurrentUser returns the session identity, or nil when nobody is logged in.
func (s *Service) CurrentUser(ctx context.Context) (*Identity, error) {
	identity, err := s.creds.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading identity: %w", err)
	}
	return identity, nil
}

func (s *Service) mintToken(email, name string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":  uuid.NewString(),
		"sub":  email,
		"name": name,
		"iat":  jwt.NewNumericDate(now),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
