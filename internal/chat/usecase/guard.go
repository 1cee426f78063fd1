package usecase

import (
	"time"

	"schedula/pkg/timeparse"
)

// guardDate blocks operations aimed at dates before the reference date.
// The reference date itself is allowed. The returned error text is user
// facing and is embedded verbatim in the chat reply.
func (uc *implUseCase) guardDate(date *time.Time, operation string) error {
	if date == nil {
		return replyErrorf("Please specify a date for the %s operation.", operation)
	}

	today := timeparse.StartOfDay(uc.cfg.ReferenceDate)
	if timeparse.StartOfDay(*date).Before(today) {
		return replyErrorf("Cannot %s sessions for past dates. Please choose a current or future date.", operation)
	}
	return nil
}
