package booking

import "errors"

// Domain-specific errors for the booking package.
var (
	ErrNotFound        = errors.New("booking not found")
	ErrConflict        = errors.New("time slot conflicts with existing booking")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrMissingTitle    = errors.New("title is required")
	ErrEmptyQuery      = errors.New("search query is empty")
)
