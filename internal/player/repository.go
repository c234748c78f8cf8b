package player

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

const attributeColumns = `pa.id, p.full_name, pa.age, pa.height_cm, pa.weight_kg,
	pa.position, pa.secondary_position, pa.preferred_foot, pa.nationality,
	pa.current_club, pa.available_for_transfer, pa.open_to_trials,
	pa.value_in_euros, pa.pace, pa.shooting, pa.passing, pa.dribbling,
	pa.defending, pa.physical, pa.created_at, pa.updated_at`

func scanAttributes(row interface{ Scan(...interface{}) error }) (*Attributes, error) {
	var a Attributes
	var foot string
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Age,
		&a.HeightCm,
		&a.WeightKg,
		&a.Position,
		&a.SecondaryPosition,
		&foot,
		&a.Nationality,
		&a.CurrentClub,
		&a.AvailableForTransfer,
		&a.OpenToTrials,
		&a.ValueInEuros,
		&a.Stats.Pace,
		&a.Stats.Shooting,
		&a.Stats.Passing,
		&a.Stats.Dribbling,
		&a.Stats.Defending,
		&a.Stats.Physical,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.PreferredFoot = ParsePreferredFoot(foot)
	return &a, nil
}

// List returns attributes joined with the owning profile's name, restricted
// to public player profiles, newest first.
func (r *Repository) List(ctx context.Context) ([]Attributes, error) {
	logger := slog.With("component", "player_repository", "operation", "list")

	query := fmt.Sprintf(`
		SELECT %s
		FROM player_attributes pa
		JOIN profiles p ON p.id = pa.id
		WHERE p.is_public = TRUE
		ORDER BY pa.created_at DESC`, attributeColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query player attributes", "error", err)
		return nil, errors.WrapExternal("failed to query players", err)
	}
	defer rows.Close()

	var players []Attributes
	for rows.Next() {
		a, err := scanAttributes(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan player", err)
		}
		a.HasAttributes = true
		players = append(players, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating players", err)
	}

	logger.Debug("Players retrieved", "count", len(players))
	return players, nil
}

// GetByID returns the attribute sheet for a player profile. A player who has
// not filled the sheet in yet reads as zero-value defaults with
// HasAttributes false; a missing or non-player profile is not found.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Attributes, error) {
	logger := slog.With("component", "player_repository", "operation", "get_by_id", "profile_id", id)

	query := `
		SELECT p.id, p.full_name,
			COALESCE(pa.age, 0), COALESCE(pa.height_cm, 0), COALESCE(pa.weight_kg, 0),
			COALESCE(pa.position, ''), pa.secondary_position, COALESCE(pa.preferred_foot, ''),
			COALESCE(pa.nationality, ''), pa.current_club,
			COALESCE(pa.available_for_transfer, FALSE), COALESCE(pa.open_to_trials, FALSE),
			COALESCE(pa.value_in_euros, 0),
			COALESCE(pa.pace, 0), COALESCE(pa.shooting, 0), COALESCE(pa.passing, 0),
			COALESCE(pa.dribbling, 0), COALESCE(pa.defending, 0), COALESCE(pa.physical, 0),
			COALESCE(pa.created_at, p.created_at), COALESCE(pa.updated_at, p.updated_at),
			pa.id IS NOT NULL
		FROM profiles p
		LEFT JOIN player_attributes pa ON pa.id = p.id
		WHERE p.id = $1 AND p.role = 'player'`

	var a Attributes
	var foot string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.FullName,
		&a.Age, &a.HeightCm, &a.WeightKg,
		&a.Position, &a.SecondaryPosition, &foot,
		&a.Nationality, &a.CurrentClub,
		&a.AvailableForTransfer, &a.OpenToTrials,
		&a.ValueInEuros,
		&a.Stats.Pace, &a.Stats.Shooting, &a.Stats.Passing,
		&a.Stats.Dribbling, &a.Stats.Defending, &a.Stats.Physical,
		&a.CreatedAt, &a.UpdatedAt,
		&a.HasAttributes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("player %s not found", id)
		}
		logger.Error("Database error getting player", "error", err)
		return nil, errors.WrapExternal("failed to get player", err)
	}

	a.PreferredFoot = ParsePreferredFoot(foot)
	return &a, nil
}

// Ensure inserts an empty attributes row for a profile if one does not exist
// yet. Safe to call repeatedly.
func (r *Repository) Ensure(ctx context.Context, id uuid.UUID) error {
	logger := slog.With("component", "player_repository", "operation", "ensure", "profile_id", id)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO player_attributes (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING`, id)
	if err != nil {
		logger.Error("Failed to seed player attributes", "error", err)
		return errors.WrapExternal("failed to seed player attributes", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, update AttributesUpdate) (*Attributes, error) {
	logger := slog.With("component", "player_repository", "operation", "update", "profile_id", id)

	var pace, shooting, passing, dribbling, defending, physical *int
	if update.Stats != nil {
		pace = &update.Stats.Pace
		shooting = &update.Stats.Shooting
		passing = &update.Stats.Passing
		dribbling = &update.Stats.Dribbling
		defending = &update.Stats.Defending
		physical = &update.Stats.Physical
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE player_attributes SET
			age                    = COALESCE($2, age),
			height_cm              = COALESCE($3, height_cm),
			weight_kg              = COALESCE($4, weight_kg),
			position               = COALESCE($5, position),
			secondary_position     = COALESCE($6, secondary_position),
			preferred_foot         = COALESCE($7, preferred_foot),
			nationality            = COALESCE($8, nationality),
			current_club           = COALESCE($9, current_club),
			available_for_transfer = COALESCE($10, available_for_transfer),
			open_to_trials         = COALESCE($11, open_to_trials),
			value_in_euros         = COALESCE($12, value_in_euros),
			pace                   = COALESCE($13, pace),
			shooting               = COALESCE($14, shooting),
			passing                = COALESCE($15, passing),
			dribbling              = COALESCE($16, dribbling),
			defending              = COALESCE($17, defending),
			physical               = COALESCE($18, physical),
			updated_at             = NOW()
		WHERE id = $1`, id,
		update.Age, update.HeightCm, update.WeightKg,
		update.Position, update.SecondaryPosition, update.PreferredFoot,
		update.Nationality, update.CurrentClub,
		update.AvailableForTransfer, update.OpenToTrials, update.ValueInEuros,
		pace, shooting, passing, dribbling, defending, physical)
	if err != nil {
		logger.Error("Failed to update player attributes", "error", err)
		return nil, errors.WrapExternal("failed to update player attributes", err)
	}

	return r.GetByID(ctx, id)
}
