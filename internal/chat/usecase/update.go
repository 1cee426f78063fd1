package usecase

import (
	"context"
	"errors"
	"time"

	"schedula/internal/booking"
	"schedula/internal/chat"
	"schedula/pkg/timeparse"
)

// executeUpdate reschedules one booking on the extracted date. Under the
// lenient policy a day with several bookings resolves to the earliest one
// and the conflict re-check is skipped; strict mode refuses the ambiguity
// and keeps the re-check.
func (uc *implUseCase) executeUpdate(ctx context.Context, info chat.ExtractedInfo) (updated, original booking.Booking, err error) {
	if err := uc.guardDate(info.Date, "update"); err != nil {
		return booking.Booking{}, booking.Booking{}, err
	}

	candidates, err := uc.bookingUC.List(ctx, booking.ListInput{
		From: timeparse.StartOfDay(*info.Date),
		To:   timeparse.EndOfDay(*info.Date),
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.executeUpdate.List: %v", err)
		return booking.Booking{}, booking.Booking{}, replyError("Failed to update booking.")
	}

	if len(candidates) == 0 {
		return booking.Booking{}, booking.Booking{}, replyError("No bookings found to update on the specified date.")
	}
	if len(candidates) > 1 && uc.cfg.StrictUpdate {
		return booking.Booking{}, booking.Booking{},
			replyError("Multiple bookings found on that date. Please be more specific about which session to update.")
	}
	target := candidates[0]

	if info.Time == nil {
		return booking.Booking{}, booking.Booking{}, replyError("Please specify a new time for the update.")
	}

	newStart := info.Time.On(target.StartTime)
	var newEnd time.Time
	if info.EndTime != nil {
		newEnd = info.EndTime.On(target.StartTime)
	} else {
		duration := target.Duration()
		if info.Duration != nil {
			duration = *info.Duration
		}
		newEnd = newStart.Add(duration)
	}

	category := target.Category
	if info.Category != "" {
		category = info.Category
	}

	updated, err = uc.bookingUC.Update(ctx, booking.UpdateInput{
		ID:          target.ID,
		Title:       target.Title,
		Description: target.Description,
		Category:    category,
		StartTime:   newStart,
		EndTime:     newEnd,
		ClientName:  target.ClientName,
		ClientEmail: target.ClientEmail,

		SkipConflictCheck: !uc.cfg.StrictUpdate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.executeUpdate: %v", err)
		if errors.Is(err, booking.ErrConflict) {
			return booking.Booking{}, booking.Booking{},
				replyError("The new time conflicts with another booking. Please try a different time.")
		}
		return booking.Booking{}, booking.Booking{}, replyError("Failed to update booking.")
	}

	return updated, target, nil
}
