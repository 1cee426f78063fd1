package usecase

import (
	"context"
	"errors"
	"fmt"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
)

// Update replaces a booking's state. The overlap re-check excludes the target
// itself and can be skipped by the caller (lenient interpreter policy).
func (uc *implUseCase) Update(ctx context.Context, input booking.UpdateInput) (booking.Booking, error) {
	if input.Title == "" {
		return booking.Booking{}, booking.ErrMissingTitle
	}
	if !input.EndTime.After(input.StartTime) {
		return booking.Booking{}, booking.ErrInvalidInterval
	}

	existing, err := uc.repo.GetOneBooking(ctx, repository.GetOneBookingOptions{ID: input.ID})
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking.Update: %w", err)
	}
	if existing.ID == "" {
		return booking.Booking{}, booking.ErrNotFound
	}

	if !input.SkipConflictCheck {
		unlock := uc.locks.acquire(input.StartTime)
		defer unlock()

		overlapping, err := uc.repo.ListOverlapping(ctx, repository.OverlapOptions{
			Start:     input.StartTime,
			End:       input.EndTime,
			ExcludeID: input.ID,
		})
		if err != nil {
			return booking.Booking{}, fmt.Errorf("booking.Update: %w", err)
		}
		if len(overlapping) > 0 {
			return booking.Booking{}, booking.ErrConflict
		}
	}

	updated, err := uc.repo.UpdateBooking(ctx, repository.UpdateBookingOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
	})
	if errors.Is(err, repository.ErrRecordNotFound) {
		return booking.Booking{}, booking.ErrNotFound
	}
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking.Update: %w", err)
	}

	uc.l.Infof(ctx, "booking.Update: updated %s", updated.ID)
	return updated, nil
}
