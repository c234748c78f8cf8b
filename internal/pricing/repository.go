package pricing

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

const planColumns = `id, role, name, price, currency, period, features, recommended`

func scanPlan(row interface{ Scan(...interface{}) error }) (*Plan, error) {
	var p Plan
	var period string
	err := row.Scan(
		&p.ID,
		&p.Role,
		&p.Name,
		&p.Price,
		&p.Currency,
		&period,
		pq.Array(&p.Features),
		&p.Recommended,
	)
	if err != nil {
		return nil, err
	}
	p.Period = ParsePeriod(period)
	return &p, nil
}

// List returns plans grouped by role, cheapest first within each role.
func (r *Repository) List(ctx context.Context, role string) ([]Plan, error) {
	logger := slog.With("component", "pricing_repository", "operation", "list", "role", role)

	query := fmt.Sprintf(`SELECT %s FROM pricing_plans`, planColumns)
	args := []interface{}{}
	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY role, price ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query pricing plans", "error", err)
		return nil, errors.WrapExternal("failed to query pricing plans", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan pricing plan", err)
		}
		plans = append(plans, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating pricing plans", err)
	}

	return plans, nil
}

func (r *Repository) Upsert(ctx context.Context, input PlanInput, period Period) (*Plan, error) {
	logger := slog.With("component", "pricing_repository", "operation", "upsert",
		"role", input.Role, "name", input.Name)

	query := fmt.Sprintf(`
		INSERT INTO pricing_plans (id, role, name, price, currency, period, features, recommended)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (role, name) DO UPDATE SET
			price       = EXCLUDED.price,
			currency    = EXCLUDED.currency,
			period      = EXCLUDED.period,
			features    = EXCLUDED.features,
			recommended = EXCLUDED.recommended
		RETURNING %s`, planColumns)

	p, err := scanPlan(r.db.QueryRowContext(ctx, query,
		uuid.New(), input.Role, input.Name, input.Price, input.Currency,
		string(period), pq.Array(input.Features), input.Recommended))
	if err != nil {
		logger.Error("Failed to upsert pricing plan", "error", err)
		return nil, errors.WrapExternal("failed to save pricing plan", err)
	}

	return p, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pricing_plans WHERE id = $1`, id)
	if err != nil {
		return errors.WrapExternal("failed to delete pricing plan", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("pricing plan %s not found", id)
	}

	return nil
}
