package domain

import (
	"context"
	"time"
)

// Booking is a seat reservation for an event, identified by email.
// At most one booking exists per (EventID, Email).
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking creates a new Booking. ID is typically set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines attendee-facing booking operations.
type BookingService interface {
	BookEvent(ctx context.Context, slug, email string) (*Booking, error)
	ListBookings(ctx context.Context, slug string) ([]*Booking, error)
}
