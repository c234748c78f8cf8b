package auth

import (
	"context"
	"log/slog"
	"strings"

	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/config"
	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

// ProfileStore is the slice of the profile service the auth flow needs.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)
	Create(ctx context.Context, id uuid.UUID, fullName, email string, role profile.Role, verified bool) (*profile.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role profile.Role) error
}

// CredentialStore persists password hashes and external identities.
type CredentialStore interface {
	CreateCredentials(ctx context.Context, profileID uuid.UUID, passwordHash string) error
	GetPasswordHash(ctx context.Context, profileID uuid.UUID) (string, error)
	LinkAuthProvider(ctx context.Context, profileID uuid.UUID, provider, providerUserID, providerEmail string) error
	FindProfileByAuthProvider(ctx context.Context, provider, providerUserID string) (uuid.UUID, error)
}

// FlagReader reads system flags that gate registration behavior.
type FlagReader interface {
	Bool(ctx context.Context, key string, fallback bool) (bool, error)
}

// AttributeSeeder creates the empty player attribute row for new player
// accounts.
type AttributeSeeder interface {
	Ensure(ctx context.Context, profileID uuid.UUID) error
}

type Service struct {
	profiles    ProfileStore
	credentials CredentialStore
	flags       FlagReader
	attributes  AttributeSeeder
	logger      *slog.Logger
}

func NewService(profiles ProfileStore, credentials CredentialStore, flags FlagReader, attributes AttributeSeeder, logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")

	return &Service{
		profiles:    profiles,
		credentials: credentials,
		flags:       flags,
		attributes:  attributes,
		logger:      logger,
	}
}

// SignUp registers a password account and returns the new profile.
func (s *Service) SignUp(ctx context.Context, fullName, email, password, roleStr string) (*profile.Profile, error) {
	logger := s.logger.With("component", "auth_service", "operation", "sign_up", "email", email)

	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))

	if fullName == "" {
		return nil, errors.Validation("full name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Validation("a valid email is required")
	}
	if len(password) < MinPasswordLength {
		return nil, errors.Validationf("password must be at least %d characters", MinPasswordLength)
	}

	role := profile.ParseRole(roleStr)
	if !role.IsSignupRole() {
		return nil, errors.Validationf("unknown role %q", roleStr)
	}

	allowed, err := s.flags.Bool(ctx, "allow_registration", true)
	if err != nil {
		logger.Error("Failed to read registration flag", "error", err)
		return nil, err
	}
	if !allowed {
		return nil, errors.Forbidden("registration is currently disabled")
	}

	cfg := config.GlobalConfig
	if cfg != nil && email == cfg.Admin.Email {
		logger.Info("Registering bootstrap admin account")
		role = profile.RoleAdmin
	}

	verified, err := s.flags.Bool(ctx, "auto_verify", false)
	if err != nil {
		logger.Error("Failed to read auto-verify flag", "error", err)
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errors.WrapInternal("failed to hash password", err)
	}

	p, err := s.profiles.Create(ctx, uuid.New(), fullName, email, role, verified)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.CreateCredentials(ctx, p.ID, hash); err != nil {
		return nil, err
	}

	if role == profile.RolePlayer {
		if err := s.attributes.Ensure(ctx, p.ID); err != nil {
			logger.Error("Failed to seed player attributes", "profile_id", p.ID, "error", err)
			return nil, err
		}
	}

	logger.Info("Account registered", "profile_id", p.ID, "role", p.Role)
	return p, nil
}

// SignIn verifies password credentials. Unknown emails, OAuth-only accounts
// and wrong passwords all produce the same unauthorized error so the
// response does not reveal which part failed.
func (s *Service) SignIn(ctx context.Context, email, password string) (*profile.Profile, error) {
	logger := s.logger.With("component", "auth_service", "operation", "sign_in")

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.Validation("email and password are required")
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.GetType(err) == errors.ErrorTypeNotFound {
			return nil, errors.Unauthorized("invalid email or password")
		}
		logger.Error("Failed to look up profile", "error", err)
		return nil, err
	}

	hash, err := s.credentials.GetPasswordHash(ctx, p.ID)
	if err != nil {
		if errors.GetType(err) == errors.ErrorTypeNotFound {
			return nil, errors.Unauthorized("invalid email or password")
		}
		logger.Error("Failed to read credentials", "error", err)
		return nil, err
	}

	if !CheckPassword(password, hash) {
		return nil, errors.Unauthorized("invalid email or password")
	}

	logger.Info("Sign in successful", "profile_id", p.ID, "role", p.Role)
	return p, nil
}

// FindOrCreateByOAuth resolves an external identity to a profile, creating
// one on first sign-in. OAuth accounts start without a role until the user
// completes their profile.
func (s *Service) FindOrCreateByOAuth(ctx context.Context, provider, providerUserID, email, fullName string) (*profile.Profile, error) {
	logger := s.logger.With("component", "auth_service", "operation", "oauth_sign_in",
		"provider", provider, "email", email)

	email = strings.ToLower(strings.TrimSpace(email))

	profileID, err := s.credentials.FindProfileByAuthProvider(ctx, provider, providerUserID)
	if err == nil {
		return s.profiles.GetByID(ctx, profileID)
	}
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		logger.Error("Failed to look up external identity", "error", err)
		return nil, err
	}

	cfg := config.GlobalConfig
	isAdminEmail := cfg != nil && email == cfg.Admin.Email

	// Link the external identity to an existing password account when the
	// emails match.
	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil && errors.GetType(err) != errors.ErrorTypeNotFound {
		logger.Error("Failed to look up profile by email", "error", err)
		return nil, err
	}

	if p != nil {
		if isAdminEmail && p.Role != profile.RoleAdmin {
			logger.Info("Upgrading existing account to admin role", "profile_id", p.ID)
			if err := s.profiles.UpdateRole(ctx, p.ID, profile.RoleAdmin); err != nil {
				return nil, err
			}
			p.Role = profile.RoleAdmin
		}
		if err := s.credentials.LinkAuthProvider(ctx, p.ID, provider, providerUserID, email); err != nil {
			return nil, err
		}
		logger.Info("Linked external identity to existing account", "profile_id", p.ID)
		return p, nil
	}

	role := profile.RoleNone
	if isAdminEmail {
		role = profile.RoleAdmin
		if cfg.Admin.FullName != "" {
			fullName = cfg.Admin.FullName
		}
	}

	p, err = s.profiles.Create(ctx, uuid.New(), fullName, email, role, false)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.LinkAuthProvider(ctx, p.ID, provider, providerUserID, email); err != nil {
		return nil, err
	}

	logger.Info("Created account from external identity", "profile_id", p.ID, "role", p.Role)
	return p, nil
}
