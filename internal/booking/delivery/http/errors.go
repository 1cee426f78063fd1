package http

import (
	"errors"

	"schedula/internal/booking"
	pkgErrors "schedula/pkg/errors"
)

var (
	errBookingNotFound = pkgErrors.NewHTTPError(404, "booking not found")
	errSlotConflict    = pkgErrors.NewHTTPError(409, "time slot conflicts with an existing booking")
	errBadInterval     = pkgErrors.NewHTTPError(400, "end time must be after start time")
	errMissingTitle    = pkgErrors.NewHTTPError(400, "title is required")
	errEmptyQuery      = pkgErrors.NewHTTPError(400, "search query is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return errBookingNotFound
	case errors.Is(err, booking.ErrConflict):
		return errSlotConflict
	case errors.Is(err, booking.ErrInvalidInterval):
		return errBadInterval
	case errors.Is(err, booking.ErrMissingTitle):
		return errMissingTitle
	case errors.Is(err, booking.ErrEmptyQuery):
		return errEmptyQuery
	default:
		return err
	}
}
