package usecase

import (
	"context"
	"fmt"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
)

// Create validates the interval, rejects overlapping bookings and inserts.
// The overlap test is half-open: [a,b) and [c,d) conflict iff a < d && c < b,
// so back-to-back sessions sharing a boundary are allowed.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.Booking, error) {
	if input.Title == "" {
		return booking.Booking{}, booking.ErrMissingTitle
	}
	if !input.EndTime.After(input.StartTime) {
		return booking.Booking{}, booking.ErrInvalidInterval
	}

	unlock := uc.locks.acquire(input.StartTime)
	defer unlock()

	overlapping, err := uc.repo.ListOverlapping(ctx, repository.OverlapOptions{
		Start: input.StartTime,
		End:   input.EndTime,
	})
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking.Create: %w", err)
	}
	if len(overlapping) > 0 {
		uc.l.Infof(ctx, "booking.Create: conflict with %d existing booking(s)", len(overlapping))
		return booking.Booking{}, booking.ErrConflict
	}

	created, err := uc.repo.CreateBooking(ctx, repository.CreateBookingOptions{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
	})
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking.Create: %w", err)
	}

	uc.l.Infof(ctx, "booking.Create: created %s (%s)", created.ID, created.Title)
	return created, nil
}
