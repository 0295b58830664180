package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits for events.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes one invalid field.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a list of field-level failures. It implements error so it can travel
// through service returns and be recovered with errors.As.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns v as an error, or nil when v is empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func required(errs *ValidationErrors, field, value, label string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, label+" is required")
	}
}

// Validate checks the declarative constraints of an event. It does not check
// date or time formats; those are enforced by normalization.
func (e *Event) Validate() ValidationErrors {
	var errs ValidationErrors
	required(&errs, "title", e.Title, "Title")
	if utf8.RuneCountInString(strings.TrimSpace(e.Title)) > MaxTitleLength {
		errs.Add("title", fmt.Sprintf("Title cannot exceed %d characters", MaxTitleLength))
	}
	required(&errs, "description", e.Description, "Description")
	if utf8.RuneCountInString(strings.TrimSpace(e.Description)) > MaxDescriptionLength {
		errs.Add("description", fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength))
	}
	required(&errs, "overview", e.Overview, "Overview")
	required(&errs, "image", e.Image, "Image")
	required(&errs, "venue", e.Venue, "Venue")
	required(&errs, "location", e.Location, "Location")
	required(&errs, "date", e.Date, "Date")
	required(&errs, "time", e.Time, "Time")
	if strings.TrimSpace(string(e.Mode)) == "" {
		errs.Add("mode", "Mode is required")
	} else if !Mode(strings.ToLower(strings.TrimSpace(string(e.Mode)))).Valid() {
		errs.Add("mode", "Mode must be one of online, offline, hybrid")
	}
	required(&errs, "audience", e.Audience, "Audience")
	if len(e.Agenda) == 0 {
		errs.Add("agenda", "Agenda must contain at least one item")
	}
	required(&errs, "organizer", e.Organizer, "Organizer")
	if len(e.Tags) == 0 {
		errs.Add("tags", "Tags must contain at least one item")
	}
	return errs
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the booking fields. Email is expected to be normalized already.
func (b *Booking) Validate() ValidationErrors {
	var errs ValidationErrors
	if b.EventID == "" {
		errs.Add("event_id", "Event ID is required")
	}
	if b.Email == "" {
		errs.Add("email", "Email is required")
	} else if !emailRegex.MatchString(b.Email) {
		errs.Add("email", "Please provide a valid email address")
	}
	return errs
}
