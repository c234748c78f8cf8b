package settings

import (
	"context"
	"database/sql"
	"log/slog"

	"scoutlink-server/internal/shared/errors"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	err := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM system_settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("setting %q not found", key)
		}
		return nil, errors.WrapExternal("failed to get setting", err)
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]Setting, error) {
	logger := slog.With("component", "settings_repository", "operation", "list")

	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM system_settings ORDER BY key`)
	if err != nil {
		logger.Error("Failed to query settings", "error", err)
		return nil, errors.WrapExternal("failed to query settings", err)
	}
	defer rows.Close()

	var all []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, errors.WrapExternal("failed to scan setting", err)
		}
		all = append(all, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating settings", err)
	}

	return all, nil
}

// Set writes a flag value, creating the row if it does not exist.
func (r *Repository) Set(ctx context.Context, key string, value bool) error {
	logger := slog.With("component", "settings_repository", "operation", "set", "key", key, "value", value)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO system_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		logger.Error("Failed to set setting", "error", err)
		return errors.WrapExternal("failed to set setting", err)
	}

	logger.Info("Setting updated")
	return nil
}
