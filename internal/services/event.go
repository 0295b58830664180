package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"devevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := event.Validate(); len(errs) > 0 {
		return nil, errs
	}
	normalized, err := s.normalize(ctx, nil, event)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	normalized.CreatedAt = now
	normalized.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, normalized); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return normalized, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, slug string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	candidate := patch.Apply(current)
	if errs := candidate.Validate(); len(errs) > 0 {
		return nil, errs
	}
	normalized, err := s.normalize(ctx, current, candidate)
	if err != nil {
		return nil, err
	}

	normalized.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, normalized); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return normalized, nil
}

// normalize runs NormalizeEvent and keeps validation failures unwrapped so callers can errors.As them.
func (s *eventService) normalize(ctx context.Context, previous, incoming *domain.Event) (*domain.Event, error) {
	normalized, err := NormalizeEvent(ctx, previous, incoming, s.eventRepo)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, verrs
		}
		return nil, fmt.Errorf("normalize event: %w", err)
	}
	return normalized, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetSimilarEvents(ctx context.Context, slug string) []*domain.Event {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "similar events: get event", "slug", slug, "err", err)
		}
		return []*domain.Event{}
	}
	related, err := s.eventRepo.ListByAnyTag(ctx, event.ID, event.Tags)
	if err != nil {
		s.logger.ErrorContext(ctx, "similar events: list by tag", "slug", slug, "err", err)
		return []*domain.Event{}
	}
	if related == nil {
		related = []*domain.Event{}
	}
	return related
}
