package postgres

import (
	"context"
	"database/sql"

	"devevents/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	return mapError(err)
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
