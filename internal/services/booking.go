package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devevents/internal/domain"
)

type bookingService struct {
	eventRepo      domain.EventRepository
	bookingRepo    domain.BookingRepository
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(eventRepo domain.EventRepository, bookingRepo domain.BookingRepository, timeout time.Duration) domain.BookingService {
	return &bookingService{
		eventRepo:      eventRepo,
		bookingRepo:    bookingRepo,
		contextTimeout: timeout,
	}
}

func (s *bookingService) BookEvent(ctx context.Context, slug, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Event existence is checked here; the store keeps no foreign key.
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now()
	booking := domain.NewBooking(event.ID, domain.NormalizeEmail(email), now, now)
	if errs := booking.Validate(); len(errs) > 0 {
		return nil, errs
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, slug string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}
