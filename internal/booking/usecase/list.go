package usecase

import (
	"context"
	"fmt"
	"time"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
)

// List returns bookings starting within the input range, ascending by start.
func (uc *implUseCase) List(ctx context.Context, input booking.ListInput) ([]booking.Booking, error) {
	out, err := uc.repo.ListBookings(ctx, repository.ListBookingsOptions{
		From: input.From,
		To:   input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("booking.List: %w", err)
	}
	return out, nil
}

// Detail returns a single booking by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (booking.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, repository.GetOneBookingOptions{ID: id})
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking.Detail: %w", err)
	}
	if b.ID == "" {
		return booking.Booking{}, booking.ErrNotFound
	}
	return b, nil
}

// Search runs a case-insensitive keyword match over title, description,
// category and client name, optionally restricted to a date range.
func (uc *implUseCase) Search(ctx context.Context, input booking.SearchInput) ([]booking.Booking, error) {
	if input.Query == "" {
		return nil, booking.ErrEmptyQuery
	}

	// Unbounded range unless the caller narrows it.
	from := time.Time{}
	to := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if input.From != nil {
		from = *input.From
	}
	if input.To != nil {
		to = *input.To
	}

	out, err := uc.repo.ListBookings(ctx, repository.ListBookingsOptions{
		From:  from,
		To:    to,
		Query: input.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("booking.Search: %w", err)
	}
	return out, nil
}
