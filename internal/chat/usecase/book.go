package usecase

import (
	"context"
	"errors"

	"schedula/internal/booking"
	"schedula/internal/chat"
)

// executeBook resolves a booking draft from the message and creates it.
// The returned error text is user facing.
func (uc *implUseCase) executeBook(ctx context.Context, info chat.ExtractedInfo) (booking.Booking, error) {
	d := uc.applyDefaults(info)

	if err := uc.guardDate(&d.StartTime, "create"); err != nil {
		return booking.Booking{}, err
	}

	created, err := uc.bookingUC.Create(ctx, booking.CreateInput{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		ClientName:  d.ClientName,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.executeBook: %v", err)
		if errors.Is(err, booking.ErrConflict) {
			return booking.Booking{}, replyError("That time slot conflicts with an existing booking. Please try a different time.")
		}
		return booking.Booking{}, replyError("Failed to create booking.")
	}

	return created, nil
}
