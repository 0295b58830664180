package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"devevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(events *controllers.EventController, bookings *controllers.BookingController, health *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", events.ListEvents)
	mux.HandleFunc("POST /api/events", events.CreateEvent)
	mux.HandleFunc("GET /api/events/{slug}", events.GetEventBySlug)
	mux.HandleFunc("PATCH /api/events/{slug}", events.UpdateEvent)
	mux.HandleFunc("GET /api/events/{slug}/similar", events.GetSimilarEvents)

	// Bookings
	mux.HandleFunc("POST /api/events/{slug}/bookings", bookings.BookEvent)
	mux.HandleFunc("GET /api/events/{slug}/bookings", bookings.ListBookings)

	mux.HandleFunc("GET /healthz", health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
