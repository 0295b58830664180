package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// Response messages for event endpoints.
const (
	MsgEventFetched   = "Event fetched successfully"
	MsgEventsFetched  = "Events fetched successfully"
	MsgEventCreated   = "Event created successfully"
	MsgEventUpdated   = "Event updated successfully"
	MsgSimilarFetched = "Similar events fetched successfully"

	MsgFetchEventFailed  = "Failed to fetch event"
	MsgFetchEventsFailed = "Failed to fetch events"
	MsgCreateEventFailed = "Failed to create event"
	MsgUpdateEventFailed = "Failed to update event"
)

func eventNotFound(slug string) string {
	return fmt.Sprintf("Event with slug '%s' not found", slug)
}

// EventResponse is the body of single-event responses.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// EventsResponse is the body of event list responses.
type EventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// CreateEventRequest is the request body for POST /api/events. Slug, id and timestamps are server-generated.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

func (c CreateEventRequest) toEvent() *domain.Event {
	return &domain.Event{
		Title:       c.Title,
		Description: c.Description,
		Overview:    c.Overview,
		Image:       c.Image,
		Venue:       c.Venue,
		Location:    c.Location,
		Date:        c.Date,
		Time:        c.Time,
		Mode:        domain.Mode(c.Mode),
		Audience:    c.Audience,
		Agenda:      c.Agenda,
		Organizer:   c.Organizer,
		Tags:        c.Tags,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description The slug is trimmed and lower-cased before lookup.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.MessageResponse "blank slug"
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := helpers.SlugParam(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, eventNotFound(slug))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, MsgFetchEventFailed, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: MsgEventFetched, Event: event})
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event, newest first.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, MsgFetchEventsFailed, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventsResponse{Message: MsgEventsFetched, Events: events})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Slug is derived from the title; date is stored as YYYY-MM-DD and time as 24-hour HH:MM.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ValidationErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toEvent())
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			helpers.WriteValidationErrors(w, verrs)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, MsgCreateEventFailed, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Message: MsgEventCreated, Event: event})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update. Omitted fields are unchanged; the slug is re-derived only when the title changes.
// @Tags events
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param body body domain.EventPatch true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ValidationErrorResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	slug, ok := helpers.SlugParam(w, r)
	if !ok {
		return
	}
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), slug, patch)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			helpers.WriteValidationErrors(w, verrs)
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteMessage(w, http.StatusNotFound, eventNotFound(slug))
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteServerError(w, MsgUpdateEventFailed, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: MsgEventUpdated, Event: event})
}

// GetSimilarEvents godoc
// @Summary List events sharing a tag
// @Description Events other than the given one with at least one tag in common. Unknown slugs and store failures yield an empty list.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventsResponse
// @Router /api/events/{slug}/similar [get]
func (c *EventController) GetSimilarEvents(w http.ResponseWriter, r *http.Request) {
	events := c.Service.GetSimilarEvents(r.Context(), r.PathValue("slug"))
	helpers.WriteJSON(w, http.StatusOK, EventsResponse{Message: MsgSimilarFetched, Events: events})
}
