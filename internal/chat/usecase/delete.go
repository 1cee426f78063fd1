package usecase

import (
	"context"

	"schedula/internal/booking"
	"schedula/internal/chat"
	"schedula/pkg/timeparse"
)

// executeDelete removes every booking on the extracted date, best-effort:
// a failure on one record is logged and skipped, the rest still go. Zero
// matches is a success with a count of zero, not an error.
func (uc *implUseCase) executeDelete(ctx context.Context, info chat.ExtractedInfo) (deleted []booking.Booking, err error) {
	if err := uc.guardDate(info.Date, "delete"); err != nil {
		return nil, err
	}

	candidates, err := uc.bookingUC.List(ctx, booking.ListInput{
		From: timeparse.StartOfDay(*info.Date),
		To:   timeparse.EndOfDay(*info.Date),
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.executeDelete.List: %v", err)
		return nil, replyError("Failed to delete bookings.")
	}

	for _, b := range candidates {
		if err := uc.bookingUC.Delete(ctx, b.ID); err != nil {
			uc.l.Warnf(ctx, "chat.usecase.executeDelete: booking %s: %v", b.ID, err)
			continue
		}
		deleted = append(deleted, b)
	}

	return deleted, nil
}
