package usecase

import (
	"context"
	"errors"
	"fmt"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
)

// Delete removes a booking by id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	err := uc.repo.DeleteBooking(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return booking.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("booking.Delete: %w", err)
	}

	uc.l.Infof(ctx, "booking.Delete: deleted %s", id)
	return nil
}
