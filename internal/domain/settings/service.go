package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reddy1234arjun/taskmanagement/internal/domain/auth"
)

// PreferenceRepository persists the user-settings blob.
type PreferenceRepository interface {
	Save(ctx context.Context, prefs Preferences) error
	// Load returns the persisted preferences, or nil when none were saved.
	Load(ctx context.Context) (*Preferences, error)
}

// Profile is the settings view: session identity plus preferences.
type Profile struct {
	User        auth.Identity `json:"user"`
	Preferences Preferences   `json:"preferences"`
}

// UpdateRequest describes a settings save. Empty name/email leave the
// identity untouched.
type UpdateRequest struct {
	Name        string
	Email       string
	Preferences Preferences
}

// Service manages the user profile and preferences.
type Service struct {
	creds  auth.CredentialRepository
	prefs  PreferenceRepository
	logger *slog.Logger
}

// NewService creates a new settings service.
func NewService(creds auth.CredentialRepository, prefs PreferenceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{creds: creds, prefs: prefs, logger: logger}
}

// Get returns the current profile. Defaults apply when nothing was saved.
func (s *Service) Get(ctx context.Context) (*Profile, error) {
	profile := &Profile{Preferences: DefaultPreferences()}

	identity, err := s.creds.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading identity: %w", err)
	}
	if identity != nil {
		profile.User = *identity
	}

	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	if prefs != nil {
		profile.Preferences = *prefs
	}

	return profile, nil
}

// Update saves the preferences and, when name/email are supplied, rewrites
// the session identity.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Profile, error) {
	if strings.TrimSpace(req.Name) != "" || strings.TrimSpace(req.Email) != "" {
		identity := auth.Identity{Name: req.Name, Email: req.Email}
		if current, err := s.creds.Identity(ctx); err != nil {
			return nil, fmt.Errorf("loading identity: %w", err)
		} else if current != nil {
			if identity.Name == "" {
				identity.Name = current.Name
			}
			if identity.Email == "" {
				identity.Email = current.Email
			}
		}
		if err := s.creds.SaveIdentity(ctx, identity); err != nil {
			return nil, fmt.Errorf("saving identity: %w", err)
		}
	}

	if err := s.prefs.Save(ctx, req.Preferences); err != nil {
		return nil, fmt.Errorf("saving preferences: %w", err)
	}

	return s.Get(ctx)
}
