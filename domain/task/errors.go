package task

import "errors"

// Error taxonomy for the task domain. Lower layers return these sentinels
// wrapped with context; the API boundary maps them to HTTP statuses via
// errors.Is.
var (
	// ErrNotFound is returned when a referenced identifier does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed or insufficient input.
	ErrValidation = errors.New("validation failed")

	// ErrUrgencyBound is returned when the priority ladder is exceeded at
	// either end. The record is left unmodified.
	ErrUrgencyBound = errors.New("urgency boundary exceeded")

	// ErrInvalidDate is returned for unparseable date input.
	ErrInvalidDate = errors.New("invalid date")
)
