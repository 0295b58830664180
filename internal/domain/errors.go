package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	// ErrNotFound is returned when a requested event or booking does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed configuration such as an unsupported database URL.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicate is returned by repositories when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate key")
	// ErrAlreadyBooked is returned when the email already holds a booking for the event.
	ErrAlreadyBooked = errors.New("email already booked for this event")
)
