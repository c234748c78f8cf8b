package auth

import (
	"context"
	"database/sql"
	"log/slog"

	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateCredentials stores the bcrypt hash for a password account.
func (r *Repository) CreateCredentials(ctx context.Context, profileID uuid.UUID, passwordHash string) error {
	logger := slog.With("component", "auth_repository", "operation", "create_credentials", "profile_id", profileID)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (profile_id, password_hash) VALUES ($1, $2)`,
		profileID, passwordHash)
	if err != nil {
		logger.Error("Failed to store credentials", "error", err)
		return errors.WrapExternal("failed to store credentials", err)
	}

	return nil
}

// GetPasswordHash returns not found for OAuth-only accounts.
func (r *Repository) GetPasswordHash(ctx context.Context, profileID uuid.UUID) (string, error) {
	logger := slog.With("component", "auth_repository", "operation", "get_password_hash", "profile_id", profileID)

	var hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT password_hash FROM credentials WHERE profile_id = $1`, profileID).Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", errors.NotFound("no password credentials for profile")
		}
		logger.Error("Database error reading credentials", "error", err)
		return "", errors.WrapExternal("failed to read credentials", err)
	}

	return hash, nil
}

func (r *Repository) UpdatePasswordHash(ctx context.Context, profileID uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE credentials SET password_hash = $2, updated_at = NOW() WHERE profile_id = $1`,
		profileID, passwordHash)
	if err != nil {
		return errors.WrapExternal("failed to update credentials", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("no password credentials for profile")
	}

	return nil
}

// LinkAuthProvider records an external identity for a profile.
func (r *Repository) LinkAuthProvider(ctx context.Context, profileID uuid.UUID, provider, providerUserID, providerEmail string) error {
	logger := slog.With("component", "auth_repository", "operation", "link_provider",
		"profile_id", profileID, "provider", provider)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_providers (profile_id, provider, provider_user_id, provider_email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_user_id) DO NOTHING`,
		profileID, provider, providerUserID, providerEmail)
	if err != nil {
		logger.Error("Failed to link auth provider", "error", err)
		return errors.WrapExternal("failed to link auth provider", err)
	}

	logger.Info("Auth provider linked")
	return nil
}

// FindProfileByAuthProvider returns uuid.Nil with a not found error when the
// external identity has never signed in.
func (r *Repository) FindProfileByAuthProvider(ctx context.Context, provider, providerUserID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_id FROM auth_providers WHERE provider = $1 AND provider_user_id = $2`,
		provider, providerUserID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, errors.NotFound("unknown external identity")
		}
		return uuid.Nil, errors.WrapExternal("failed to look up auth provider", err)
	}

	return id, nil
}
