package usecase

import (
	"context"
	"fmt"

	"schedula/internal/booking"
	"schedula/internal/chat"
	"schedula/pkg/timeparse"
)

// executeQuery lists bookings for the extracted date, or for the rolling
// window starting at the reference date when no date was mentioned.
// rangeText is the human wording of the window for the reply.
func (uc *implUseCase) executeQuery(ctx context.Context, info chat.ExtractedInfo) (bookings []booking.Booking, rangeText string, err error) {
	var input booking.ListInput

	if info.Date != nil {
		input = booking.ListInput{
			From: timeparse.StartOfDay(*info.Date),
			To:   timeparse.EndOfDay(*info.Date),
		}
		rangeText = info.Date.Format("Mon Jan 02 2006")
	} else {
		input = booking.ListInput{
			From: uc.cfg.ReferenceDate,
			To:   uc.cfg.ReferenceDate.AddDate(0, 0, uc.cfg.QueryWindowDays),
		}
		rangeText = fmt.Sprintf("the next %d days", uc.cfg.QueryWindowDays)
	}

	bookings, err = uc.bookingUC.List(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.executeQuery: %v", err)
		return nil, "", err
	}
	return bookings, rangeText, nil
}
