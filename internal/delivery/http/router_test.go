package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
	"devevents/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memEvents is an in-memory EventRepository so the router can be exercised end to end.
type memEvents struct {
	byID  map[string]*domain.Event
	order []string
}

func newMemEvents() *memEvents { return &memEvents{byID: map[string]*domain.Event{}} }

func (m *memEvents) Create(ctx context.Context, e *domain.Event) error {
	e.ID = "ev-" + string(rune('a'+len(m.order)))
	m.byID[e.ID] = e.Clone()
	m.order = append(m.order, e.ID)
	return nil
}

func (m *memEvents) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := m.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[e.ID] = e.Clone()
	return nil
}

func (m *memEvents) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	for _, e := range m.byID {
		if e.Slug == slug {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memEvents) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for id, e := range m.byID {
		if e.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEvents) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.byID[m.order[i]].Clone())
	}
	return out, nil
}

func (m *memEvents) ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, id := range m.order {
		e := m.byID[id]
		if id == excludeID {
			continue
		}
		for _, t := range e.Tags {
			if contains(tags, t) {
				out = append(out, e.Clone())
				break
			}
		}
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type memBookings struct {
	rows []*domain.Booking
}

func (m *memBookings) Create(ctx context.Context, b *domain.Booking) error {
	for _, r := range m.rows {
		if r.EventID == b.EventID && r.Email == b.Email {
			return domain.ErrDuplicate
		}
	}
	b.ID = "bk"
	m.rows = append(m.rows, b)
	return nil
}

func (m *memBookings) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, r := range m.rows {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

type staticStore struct{ store *domain.Store }

func (s staticStore) Get(ctx context.Context) (*domain.Store, error) { return s.store, nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events, bookings := newMemEvents(), &memBookings{}
	store := domain.NewStore(events, bookings, nil, nil)

	mux := NewRouter(
		controllers.NewEventController(logger, services.NewEventService(events, logger, time.Second)),
		controllers.NewBookingController(logger, services.NewBookingService(events, bookings, time.Second)),
		controllers.NewHealthController(logger, staticStore{store: store}),
	)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func eventBody(title string, tags ...string) string {
	b, _ := json.Marshal(map[string]any{
		"title": title, "description": "A conference", "overview": "Talks and workshops",
		"image": "/images/event1.png", "venue": "RAI", "location": "Amsterdam, NL",
		"date": "Nov 12, 2025", "time": "9:30 AM", "mode": "Hybrid", "audience": "Developers",
		"agenda": []string{"Keynote"}, "organizer": "GitNation", "tags": tags,
	})
	return string(b)
}

func TestRouter_EventLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/events", eventBody("React Summit 2025", "react", "frontend"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.Event
	require.NoError(t, json.Unmarshal(body["event"], &created))
	assert.Equal(t, "react-summit-2025", created.Slug)
	assert.Equal(t, "2025-11-12", created.Date)
	assert.Equal(t, "09:30", created.Time)
	assert.Equal(t, domain.ModeHybrid, created.Mode)

	resp, body = do(t, http.MethodPost, srv.URL+"/api/events", eventBody("React Summit 2025", "react"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second domain.Event
	require.NoError(t, json.Unmarshal(body["event"], &second))
	assert.Equal(t, "react-summit-2025-1", second.Slug)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events/REACT-SUMMIT-2025", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"`+controllers.MsgEventFetched+`"`, string(body["message"]))

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events/react-summit-2025/similar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var similar []domain.Event
	require.NoError(t, json.Unmarshal(body["events"], &similar))
	require.Len(t, similar, 1)
	assert.Equal(t, "react-summit-2025-1", similar[0].Slug)

	resp, body = do(t, http.MethodPatch, srv.URL+"/api/events/react-summit-2025", `{"title":"React Summit Amsterdam"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.Event
	require.NoError(t, json.Unmarshal(body["event"], &updated))
	assert.Equal(t, "react-summit-amsterdam", updated.Slug)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/events/react-summit-2025", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []domain.Event
	require.NoError(t, json.Unmarshal(body["events"], &all))
	assert.Len(t, all, 2)
}

func TestRouter_Validation(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/events", `{"title":"","tags":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `"`+helpers.MsgValidationFailed+`"`, string(body["message"]))
	var errs []domain.FieldError
	require.NoError(t, json.Unmarshal(body["errors"], &errs))
	assert.Equal(t, "title", errs[0].Field)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events/%20%20", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `"`+helpers.MsgInvalidSlug+`"`, string(body["message"]))

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events/nope/similar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body["events"]))
}

func TestRouter_Bookings(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := do(t, http.MethodPost, srv.URL+"/api/events", eventBody("Go Meetup", "go"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/events/go-meetup/bookings", `{"email":" Gopher@Example.com "}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var booking domain.Booking
	require.NoError(t, json.Unmarshal(body["booking"], &booking))
	assert.Equal(t, "gopher@example.com", booking.Email)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/events/go-meetup/bookings", `{"email":"gopher@example.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/events/go-meetup/bookings", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/events/rust-meetup/bookings", `{"email":"gopher@example.com"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/events/go-meetup/bookings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.Booking
	require.NoError(t, json.Unmarshal(body["bookings"], &list))
	assert.Len(t, list, 1)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)
	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"ok"`, string(body["status"]))
}
