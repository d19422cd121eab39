package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/google/uuid"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) database.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	id, title, description, event_date, coordinators, whatsapp_link,
	is_team_based, min_team_size, max_team_size, team_size, created_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEvent reads one events row and resolves the team size columns.
func scanEvent(row rowScanner) (*entity.Event, error) {
	var (
		event                  entity.Event
		minSize, maxSize, size sql.NullInt64
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		jsonColumn(&event.Coordinators),
		&event.WhatsappLink,
		&event.IsTeamBased,
		&minSize,
		&maxSize,
		&size,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.MinTeamSize, event.MaxTeamSize = entity.NormalizeTeamBounds(
		nullableInt(minSize), nullableInt(maxSize), nullableInt(size),
	)
	if event.Coordinators == nil {
		event.Coordinators = []entity.Coordinator{}
	}
	return &event, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (
			id, title, description, event_date, coordinators, whatsapp_link,
			is_team_based, min_team_size, max_team_size, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	id := uuid.NewString()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		id,
		event.Title,
		event.Description,
		event.EventDate,
		jsonColumn(&event.Coordinators),
		event.WhatsappLink,
		event.IsTeamBased,
		event.MinTeamSize,
		event.MaxTeamSize,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	event.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrEventNotFound
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date ASC`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) GetUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_date >= $1 ORDER BY event_date ASC`
	return r.queryEvents(ctx, query, from)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*entity.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := make([]*entity.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	query := `DELETE FROM events WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
