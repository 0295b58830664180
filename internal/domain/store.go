package domain

import "context"

// Store bundles the repositories of one backing database together with its lifecycle.
type Store struct {
	Events   EventRepository
	Bookings BookingRepository

	ping  func(ctx context.Context) error
	close func() error
}

// NewStore returns a Store. ping and close may be nil.
func NewStore(events EventRepository, bookings BookingRepository, ping func(ctx context.Context) error, close func() error) *Store {
	return &Store{Events: events, Bookings: bookings, ping: ping, close: close}
}

// Ping checks connectivity to the backing database.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
