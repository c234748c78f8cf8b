package opportunity

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

const opportunityColumns = `id, title, description, location, position_needed,
	age_range, closing_date, contact_info, is_active, created_by, created_at`

func scanOpportunity(row interface{ Scan(...interface{}) error }) (*Opportunity, error) {
	var o Opportunity
	err := row.Scan(
		&o.ID,
		&o.Title,
		&o.Description,
		&o.Location,
		&o.PositionNeeded,
		&o.AgeRange,
		&o.ClosingDate,
		&o.ContactInfo,
		&o.IsActive,
		&o.CreatedBy,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns active opportunities, newest first. Inactive ones are kept in
// the table for the creator's records but never listed.
func (r *Repository) List(ctx context.Context) ([]Opportunity, error) {
	logger := slog.With("component", "opportunity_repository", "operation", "list")

	query := fmt.Sprintf(`
		SELECT %s FROM opportunities
		WHERE is_active = TRUE
		ORDER BY created_at DESC`, opportunityColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query opportunities", "error", err)
		return nil, errors.WrapExternal("failed to query opportunities", err)
	}
	defer rows.Close()

	var opportunities []Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan opportunity", err)
		}
		opportunities = append(opportunities, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating opportunities", err)
	}

	return opportunities, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Opportunity, error) {
	query := fmt.Sprintf(`SELECT %s FROM opportunities WHERE id = $1`, opportunityColumns)

	o, err := scanOpportunity(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("opportunity %s not found", id)
		}
		return nil, errors.WrapExternal("failed to get opportunity", err)
	}

	return o, nil
}

func (r *Repository) Create(ctx context.Context, createdBy uuid.UUID, input OpportunityInput) (*Opportunity, error) {
	logger := slog.With("component", "opportunity_repository", "operation", "create", "created_by", createdBy)

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	query := fmt.Sprintf(`
		INSERT INTO opportunities
			(id, title, description, location, position_needed, age_range,
			 closing_date, contact_info, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, opportunityColumns)

	o, err := scanOpportunity(r.db.QueryRowContext(ctx, query,
		uuid.New(), input.Title, input.Description, input.Location,
		input.PositionNeeded, input.AgeRange, input.ClosingDate,
		input.ContactInfo, active, createdBy))
	if err != nil {
		logger.Error("Failed to create opportunity", "error", err)
		return nil, errors.WrapExternal("failed to create opportunity", err)
	}

	logger.Info("Opportunity created", "opportunity_id", o.ID)
	return o, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, input OpportunityInput) (*Opportunity, error) {
	logger := slog.With("component", "opportunity_repository", "operation", "update", "opportunity_id", id)

	query := fmt.Sprintf(`
		UPDATE opportunities SET
			title           = $2,
			description     = $3,
			location        = $4,
			position_needed = $5,
			age_range       = $6,
			closing_date    = $7,
			contact_info    = $8,
			is_active       = COALESCE($9, is_active)
		WHERE id = $1
		RETURNING %s`, opportunityColumns)

	o, err := scanOpportunity(r.db.QueryRowContext(ctx, query, id,
		input.Title, input.Description, input.Location, input.PositionNeeded,
		input.AgeRange, input.ClosingDate, input.ContactInfo, input.IsActive))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("opportunity %s not found", id)
		}
		logger.Error("Failed to update opportunity", "error", err)
		return nil, errors.WrapExternal("failed to update opportunity", err)
	}

	return o, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return errors.WrapExternal("failed to delete opportunity", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("opportunity %s not found", id)
	}

	return nil
}
