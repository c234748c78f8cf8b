package event

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

const eventColumns = `id, title, date, location, type, organizer, description,
	created_by, created_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*Event, error) {
	var e Event
	var eventType string
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Date,
		&e.Location,
		&eventType,
		&e.Organizer,
		&e.Description,
		&e.CreatedBy,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Type = ParseEventType(eventType)
	return &e, nil
}

// List returns events in calendar order, soonest first.
func (r *Repository) List(ctx context.Context) ([]Event, error) {
	logger := slog.With("component", "event_repository", "operation", "list")

	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY date ASC`, eventColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query events", "error", err)
		return nil, errors.WrapExternal("failed to query events", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, errors.WrapExternal("failed to scan event", err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapExternal("error iterating events", err)
	}

	return events, nil
}

func (r *Repository) Create(ctx context.Context, createdBy uuid.UUID, input EventInput, eventType EventType) (*Event, error) {
	logger := slog.With("component", "event_repository", "operation", "create", "created_by", createdBy)

	query := fmt.Sprintf(`
		INSERT INTO events (id, title, date, location, type, organizer, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, eventColumns)

	e, err := scanEvent(r.db.QueryRowContext(ctx, query,
		uuid.New(), input.Title, input.Date, input.Location,
		string(eventType), input.Organizer, input.Description, createdBy))
	if err != nil {
		logger.Error("Failed to create event", "error", err)
		return nil, errors.WrapExternal("failed to create event", err)
	}

	logger.Info("Event created", "event_id", e.ID)
	return e, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return errors.WrapExternal("failed to delete event", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFoundf("event %s not found", id)
	}

	return nil
}
