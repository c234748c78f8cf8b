package news

import (
	"context"
	"database/sql"
	"fmt"
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

const itemColumns = `id, title, content, date, source, category, created_by, created_at`

func scanItem(row interface{ Scan(...interface{}) error }) (*Item, error) {
	var item Item
	var category string
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Content,
		&item.Date,
		&item.Source,
		&category,
		&item.CreatedBy,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Category = ParseCategory(category)
	return &item, nil
}

// List returns news items, most recent first, optionally restricted to one
// category.
func (r *Repository) List(ctx context.Context, category Category) ([]Item, error) {
	logger := slog.With("component", "news_repository", "operation", "list", "category", category)

	query := fmt.Sprintf(`SELECT %s FROM news`, itemColumns)
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, string(category))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query news", "error", err)
		return nil, errors.WrapExternal("failed to query news", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan news item", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating news", err)
	}

	return items, nil
}

func (r *Repository) Create(ctx context.Context, createdBy uuid.UUID, input ItemInput, category Category) (*Item, error) {
	logger := slog.With("component", "news_repository", "operation", "create", "created_by", createdBy)

	query := fmt.Sprintf(`
		INSERT INTO news (id, title, content, date, source, category, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		uuid.New(), input.Title, input.Content, input.Date,
		input.Source, string(category), createdBy))
	if err != nil {
		logger.Error("Failed to create news item", "error", err)
		return nil, errors.WrapExternal("failed to create news item", err)
	}

	logger.Info("News item published", "news_id", item.ID)
	return item, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return errors.WrapExternal("failed to delete news item", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("news item %s not found", id)
	}

	return nil
}
