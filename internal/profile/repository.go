package profile

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const profileColumns = `id, full_name, email, role, bio, location, avatar_url,
	is_verified, is_premium, is_public, created_at, updated_at`

func scanProfile(row interface{ Scan(...interface{}) error }) (*Profile, error) {
	var p Profile
	var role string
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&role,
		&p.Bio,
		&p.Location,
		&p.AvatarURL,
		&p.IsVerified,
		&p.IsPremium,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Role = ParseRole(role)
	return &p, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	logger := slog.With("component", "profile_repository", "operation", "get_by_id", "profile_id", id)

	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("profile %s not found", id)
		}
		logger.Error("Database error getting profile", "error", err)
		return nil, errors.WrapExternal("failed to get profile", err)
	}

	return p, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	logger := slog.With("component", "profile_repository", "operation", "get_by_email")

	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE email = $1`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("no profile with that email")
		}
		logger.Error("Database error getting profile by email", "error", err)
		return nil, errors.WrapExternal("failed to get profile", err)
	}

	return p, nil
}

// List returns profiles ordered by creation time, newest first. When
// publicOnly is set, private profiles are excluded.
func (r *Repository) List(ctx context.Context, publicOnly bool) ([]Profile, error) {
	logger := slog.With("component", "profile_repository", "operation", "list", "public_only", publicOnly)

	query := fmt.Sprintf(`SELECT %s FROM profiles`, profileColumns)
	if publicOnly {
		query += ` WHERE is_public = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query profiles", "error", err)
		return nil, errors.WrapExternal("failed to query profiles", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan profile", err)
		}
		profiles = append(profiles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating profiles", err)
	}

	logger.Debug("Profiles retrieved", "count", len(profiles))
	return profiles, nil
}

func (r *Repository) Create(ctx context.Context, id uuid.UUID, fullName, email string, role Role, verified bool) (*Profile, error) {
	logger := slog.With("component", "profile_repository", "operation", "create", "email", email, "role", role)
	logger.Info("Creating profile")

	query := fmt.Sprintf(`
		INSERT INTO profiles (id, full_name, email, role, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id, fullName, email, role.String(), verified))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return nil, errors.Conflict("an account with that email already exists")
		}
		logger.Error("Failed to create profile", "error", err)
		return nil, errors.WrapExternal("failed to create profile", err)
	}

	logger.Info("Profile created", "profile_id", p.ID)
	return p, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Profile, error) {
	logger := slog.With("component", "profile_repository", "operation", "update", "profile_id", id)

	query := fmt.Sprintf(`
		UPDATE profiles SET
			full_name  = COALESCE($2, full_name),
			bio        = COALESCE($3, bio),
			location   = COALESCE($4, location),
			avatar_url = COALESCE($5, avatar_url),
			is_public  = COALESCE($6, is_public),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, profileColumns)

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id,
		update.FullName, update.Bio, update.Location, update.AvatarURL, update.IsPublic))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("profile %s not found", id)
		}
		logger.Error("Failed to update profile", "error", err)
		return nil, errors.WrapExternal("failed to update profile", err)
	}

	return p, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role Role) error {
	logger := slog.With("component", "profile_repository", "operation", "update_role", "profile_id", id, "role", role)

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = $2, updated_at = NOW() WHERE id = $1`, id, role.String())
	if err != nil {
		logger.Error("Failed to update role", "error", err)
		return errors.WrapExternal("failed to update role", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("profile %s not found", id)
	}

	logger.Info("Role updated")
	return nil
}

func (r *Repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET is_verified = $2, updated_at = NOW() WHERE id = $1`, id, verified)
	if err != nil {
		return errors.WrapExternal("failed to update verification", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("profile %s not found", id)
	}

	return nil
}
