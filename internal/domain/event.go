package domain

import (
	"context"
	"time"
)

// Mode is the attendance format of an event.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}

// Event represents a developer event listed on the site.
// Slug, Date and Time are stored in their normalized form.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        Mode      `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of e so callers can mutate slices freely.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	if e.Agenda != nil {
		c.Agenda = append([]string(nil), e.Agenda...)
	}
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	return &c
}

// EventPatch carries the fields of a partial event update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Overview    *string   `json:"overview"`
	Image       *string   `json:"image"`
	Venue       *string   `json:"venue"`
	Location    *string   `json:"location"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Mode        *Mode     `json:"mode"`
	Audience    *string   `json:"audience"`
	Agenda      *[]string `json:"agenda"`
	Organizer   *string   `json:"organizer"`
	Tags        *[]string `json:"tags"`
}

// Apply returns a copy of e with the non-nil patch fields applied.
func (p EventPatch) Apply(e *Event) *Event {
	out := e.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Overview != nil {
		out.Overview = *p.Overview
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.Venue != nil {
		out.Venue = *p.Venue
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Mode != nil {
		out.Mode = *p.Mode
	}
	if p.Audience != nil {
		out.Audience = *p.Audience
	}
	if p.Agenda != nil {
		out.Agenda = append([]string(nil), (*p.Agenda)...)
	}
	if p.Organizer != nil {
		out.Organizer = *p.Organizer
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), (*p.Tags)...)
	}
	return out
}

// SlugChecker reports whether a slug is already held by an event other than excludeID.
// An empty excludeID excludes nothing.
type SlugChecker interface {
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	SlugChecker
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// ListByAnyTag returns events other than excludeID that carry at least one of tags.
	ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*Event, error)
}

// EventService defines event operations exposed to the HTTP layer.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, slug string, patch EventPatch) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	// GetSimilarEvents never fails; store errors yield an empty list.
	GetSimilarEvents(ctx context.Context, slug string) []*Event
}
