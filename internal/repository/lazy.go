package repository

import (
	"context"

	"devevents/internal/domain"
)

// StoreSource resolves the current store. *database.Connector[*domain.Store] satisfies it.
type StoreSource interface {
	Get(ctx context.Context) (*domain.Store, error)
}

// LazyEvents returns an EventRepository that resolves the store on every call,
// so the process can start before the database is reachable.
func LazyEvents(src StoreSource) domain.EventRepository {
	return &lazyEvents{src: src}
}

// LazyBookings is the booking counterpart of LazyEvents.
func LazyBookings(src StoreSource) domain.BookingRepository {
	return &lazyBookings{src: src}
}

type lazyEvents struct {
	src StoreSource
}

func (l *lazyEvents) repo(ctx context.Context) (domain.EventRepository, error) {
	store, err := l.src.Get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Events, nil
}

func (l *lazyEvents) Create(ctx context.Context, e *domain.Event) error {
	r, err := l.repo(ctx)
	if err != nil {
		return err
	}
	return r.Create(ctx, e)
}

func (l *lazyEvents) Update(ctx context.Context, e *domain.Event) error {
	r, err := l.repo(ctx)
	if err != nil {
		return err
	}
	return r.Update(ctx, e)
}

func (l *lazyEvents) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r, err := l.repo(ctx)
	if err != nil {
		return nil, err
	}
	return r.GetBySlug(ctx, slug)
}

func (l *lazyEvents) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r, err := l.repo(ctx)
	if err != nil {
		return false, err
	}
	return r.SlugExists(ctx, slug, excludeID)
}

func (l *lazyEvents) List(ctx context.Context) ([]*domain.Event, error) {
	r, err := l.repo(ctx)
	if err != nil {
		return nil, err
	}
	return r.List(ctx)
}

func (l *lazyEvents) ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	r, err := l.repo(ctx)
	if err != nil {
		return nil, err
	}
	return r.ListByAnyTag(ctx, excludeID, tags)
}

type lazyBookings struct {
	src StoreSource
}

func (l *lazyBookings) Create(ctx context.Context, b *domain.Booking) error {
	store, err := l.src.Get(ctx)
	if err != nil {
		return err
	}
	return store.Bookings.Create(ctx, b)
}

func (l *lazyBookings) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	store, err := l.src.Get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Bookings.ListByEventID(ctx, eventID)
}
