package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

const (
	MsgEventBooked         = "Event booked successfully"
	MsgBookingsFetched     = "Bookings fetched successfully"
	MsgAlreadyBooked       = "This email has already booked the event"
	MsgBookEventFailed     = "Failed to book event"
	MsgFetchBookingsFailed = "Failed to fetch bookings"
)

// BookEventRequest is the request body for POST /api/events/{slug}/bookings.
type BookEventRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator. Format is checked by the service after normalization.
func (b BookEventRequest) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(b.Email) == "" {
		errs.Add("email", "Email is required")
	}
	return errs
}

// BookingResponse is the body of a successful booking.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// BookingsResponse is the body of booking list responses.
type BookingsResponse struct {
	Message  string            `json:"message"`
	Bookings []*domain.Booking `json:"bookings"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// BookEvent godoc
// @Summary Book an event
// @Description Reserves a seat for email. The email is trimmed and lower-cased; one booking per email and event.
// @Tags bookings
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param body body BookEventRequest true "Attendee email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.ValidationErrorResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/bookings [post]
func (c *BookingController) BookEvent(w http.ResponseWriter, r *http.Request) {
	slug, ok := helpers.SlugParam(w, r)
	if !ok {
		return
	}
	var req BookEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.BookEvent(r.Context(), slug, req.Email)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			helpers.WriteValidationErrors(w, verrs)
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteMessage(w, http.StatusNotFound, eventNotFound(slug))
		case errors.Is(err, domain.ErrAlreadyBooked):
			helpers.WriteMessage(w, http.StatusConflict, MsgAlreadyBooked)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteServerError(w, MsgBookEventFailed, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Message: MsgEventBooked, Booking: booking})
}

// ListBookings godoc
// @Summary List bookings of an event
// @Tags bookings
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.BookingsResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	slug, ok := helpers.SlugParam(w, r)
	if !ok {
		return
	}
	bookings, err := c.Service.ListBookings(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, eventNotFound(slug))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, MsgFetchBookingsFailed, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingsResponse{Message: MsgBookingsFetched, Bookings: bookings})
}
