package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events    map[string]*domain.Event
	similar   []*domain.Event
	err       error
	createErr error
	updateErr error

	lastSlug   string
	lastCreate *domain.Event
	lastPatch  domain.EventPatch
}

func (f *fakeEventService) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	f.lastCreate = e
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := e.Clone()
	out.ID = "ev-1"
	out.Slug = "react-summit"
	return out, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, slug string, patch domain.EventPatch) (*domain.Event, error) {
	f.lastSlug = slug
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e, ok := f.events[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return patch.Apply(e), nil
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.lastSlug = slug
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Event{}
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventService) GetSimilarEvents(ctx context.Context, slug string) []*domain.Event {
	f.lastSlug = slug
	if f.similar == nil {
		return []*domain.Event{}
	}
	return f.similar
}

func reactSummit() *domain.Event {
	return &domain.Event{
		ID:     "ev-1",
		Title:  "React Summit",
		Slug:   "react-summit",
		Date:   "2025-11-12",
		Time:   "09:00",
		Mode:   domain.ModeOffline,
		Agenda: []string{"Keynote"},
		Tags:   []string{"react"},
	}
}

func TestEventController_GetEventBySlug(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		fakeErr     error
		wantStatus  int
		wantMessage string
		wantSlug    string
	}{
		{name: "success", slug: "react-summit", wantStatus: http.StatusOK, wantMessage: MsgEventFetched, wantSlug: "react-summit"},
		{name: "slug normalized", slug: "  React-Summit ", wantStatus: http.StatusOK, wantMessage: MsgEventFetched, wantSlug: "react-summit"},
		{name: "blank slug", slug: "   ", wantStatus: http.StatusBadRequest, wantMessage: helpers.MsgInvalidSlug},
		{name: "not found", slug: "Missing", wantStatus: http.StatusNotFound, wantMessage: "Event with slug 'missing' not found", wantSlug: "missing"},
		{name: "service error", slug: "react-summit", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError, wantMessage: MsgFetchEventFailed, wantSlug: "react-summit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{events: map[string]*domain.Event{"react-summit": reactSummit()}, err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/api/events/x", nil)
			req.SetPathValue("slug", tt.slug)
			rr := httptest.NewRecorder()

			ctrl.GetEventBySlug(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.wantSlug, fake.lastSlug)
			var body map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			var msg string
			require.NoError(t, json.Unmarshal(body["message"], &msg))
			assert.Equal(t, tt.wantMessage, msg)

			switch tt.wantStatus {
			case http.StatusOK:
				var ev domain.Event
				require.NoError(t, json.Unmarshal(body["event"], &ev))
				assert.Equal(t, "React Summit", ev.Title)
			case http.StatusInternalServerError:
				var errText string
				require.NoError(t, json.Unmarshal(body["error"], &errText))
				assert.Contains(t, errText, "db error")
			default:
				assert.NotContains(t, body, "event")
			}
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	fake := &fakeEventService{events: map[string]*domain.Event{"react-summit": reactSummit()}}
	ctrl := NewEventController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var body EventsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, MsgEventsFetched, body.Message)
	require.Len(t, body.Events, 1)

	fake.err = errors.New("timeout")
	rr = httptest.NewRecorder()
	ctrl.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestEventController_CreateEvent(t *testing.T) {
	validBody := `{"title":"React Summit","description":"d","overview":"o","image":"/images/event1.png",
		"venue":"v","location":"Amsterdam","date":"2025-11-12","time":"9:00 AM","mode":"offline",
		"audience":"a","agenda":["Keynote"],"organizer":"GitNation","tags":["react"]}`

	tests := []struct {
		name        string
		body        string
		createErr   error
		wantStatus  int
		wantMessage string
		wantFields  []string
	}{
		{name: "success", body: validBody, wantStatus: http.StatusCreated, wantMessage: MsgEventCreated},
		{name: "malformed body", body: `{"title":`, wantStatus: http.StatusBadRequest, wantMessage: "Invalid request body"},
		{name: "unknown field", body: `{"slug":"mine"}`, wantStatus: http.StatusBadRequest, wantMessage: "Invalid request body"},
		{
			name: "validation failed",
			body: validBody,
			createErr: domain.ValidationErrors{
				{Field: "date", Message: "date must be a valid date format"},
				{Field: "time", Message: "time must be in HH:MM or HH:MM AM/PM format"},
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: helpers.MsgValidationFailed,
			wantFields:  []string{"date", "time"},
		},
		{name: "store error", body: validBody, createErr: errors.New("create event: duplicate key"), wantStatus: http.StatusInternalServerError, wantMessage: MsgCreateEventFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createErr: tt.createErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMessage)
			if tt.wantStatus == http.StatusCreated {
				var body EventResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "react-summit", body.Event.Slug)
				assert.Equal(t, domain.ModeOffline, fake.lastCreate.Mode)
				assert.Equal(t, []string{"Keynote"}, fake.lastCreate.Agenda)
			}
			if tt.wantFields != nil {
				var body helpers.ValidationErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				var fields []string
				for _, fe := range body.Errors {
					fields = append(fields, fe.Field)
				}
				assert.Equal(t, tt.wantFields, fields)
			}
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		body       string
		updateErr  error
		wantStatus int
		wantSubstr string
	}{
		{name: "success", slug: "react-summit", body: `{"venue":"RAI"}`, wantStatus: http.StatusOK, wantSubstr: MsgEventUpdated},
		{name: "not found", slug: "missing", body: `{"venue":"RAI"}`, wantStatus: http.StatusNotFound, wantSubstr: "Event with slug 'missing' not found"},
		{name: "blank slug", slug: " ", body: `{}`, wantStatus: http.StatusBadRequest, wantSubstr: helpers.MsgInvalidSlug},
		{name: "unknown field", slug: "react-summit", body: `{"id":"x"}`, wantStatus: http.StatusBadRequest, wantSubstr: "Invalid request body"},
		{
			name:       "validation failed",
			slug:       "react-summit",
			body:       `{"title":"   "}`,
			updateErr:  domain.ValidationErrors{{Field: "title", Message: "Title is required"}},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Title is required",
		},
		{name: "store error", slug: "react-summit", body: `{"venue":"RAI"}`, updateErr: errors.New("update event: conn reset"), wantStatus: http.StatusInternalServerError, wantSubstr: "conn reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{events: map[string]*domain.Event{"react-summit": reactSummit()}, updateErr: tt.updateErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/api/events/x", strings.NewReader(tt.body))
			req.SetPathValue("slug", tt.slug)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantSubstr)
			if tt.wantStatus == http.StatusOK {
				var body EventResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "RAI", body.Event.Venue)
				require.NotNil(t, fake.lastPatch.Venue)
				assert.Nil(t, fake.lastPatch.Title)
			}
		})
	}
}

func TestEventController_GetSimilarEvents(t *testing.T) {
	t.Run("returns related events", func(t *testing.T) {
		fake := &fakeEventService{similar: []*domain.Event{reactSummit()}}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events/x/similar", nil)
		req.SetPathValue("slug", "JSConf-EU")
		rr := httptest.NewRecorder()

		ctrl.GetSimilarEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "JSConf-EU", fake.lastSlug, "slug is passed through untouched")
		var body EventsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, MsgSimilarFetched, body.Message)
		assert.Len(t, body.Events, 1)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/api/events/x/similar", nil)
		req.SetPathValue("slug", "unknown")
		rr := httptest.NewRecorder()

		ctrl.GetSimilarEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"events":[]`)
	})
}
