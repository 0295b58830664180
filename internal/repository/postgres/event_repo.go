package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"devevents/internal/domain"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, event_date, event_time, mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// scannable is satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (*domain.Event, error) {
	e := &domain.Event{}
	var mode string
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &mode, &e.Audience, pq.Array(&e.Agenda), &e.Organizer, pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Mode = domain.Mode(mode)
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, event_date, event_time, mode, audience, agenda, organizer, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location, e.Date, e.Time,
		string(e.Mode), e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	return mapError(err)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET title = $1, slug = $2, description = $3, overview = $4, image = $5, venue = $6,
			location = $7, event_date = $8, event_time = $9, mode = $10, audience = $11, agenda = $12,
			organizer = $13, tags = $14, updated_at = $15
		WHERE id = $16
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location, e.Date, e.Time,
		string(e.Mode), e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags), e.UpdatedAt, e.ID,
	)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	var err error
	if excludeID == "" {
		err = r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1)`, slug).Scan(&exists)
	} else {
		err = r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1 AND id <> $2)`, slug, excludeID).Scan(&exists)
	}
	return exists, err
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *eventRepository) ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	if len(tags) == 0 {
		return []*domain.Event{}, nil
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id <> $1 AND tags && $2 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, excludeID, pq.Array(tags))
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}
