package usecase

import (
	"context"
	"strings"
	"time"

	"schedula/internal/category"
	"schedula/internal/chat"
	"schedula/pkg/timeparse"
)

// extract classifies a message and pulls out its temporal and category
// facts, accumulating a confidence score as each extraction lands.
func (uc *implUseCase) extract(ctx context.Context, message string) chat.ExtractedInfo {
	lower := strings.ToLower(message)

	intent, weight := classifyIntent(lower)
	info := chat.ExtractedInfo{Intent: intent, Confidence: weight}

	if date, ok := uc.parser.ParseDate(message, uc.cfg.ReferenceDate); ok {
		info.Date = &date
		info.Confidence += timeparse.WeightDate
	}

	// Update messages read "from X to Y" as old-time/new-time, so their
	// clocks go through a dedicated parse path; every other intent reads
	// the same phrase as a session's start and end.
	if info.Intent == chat.IntentUpdate {
		if clock, weight, ok := uc.parser.ParseUpdateClock(message); ok {
			info.Time = &clock
			info.Confidence += weight
		}
	} else {
		if start, end, ok := uc.parser.ParseRangeClock(message); ok {
			duration := start.Until(end)
			info.Time = &start
			info.EndTime = &end
			info.Duration = &duration
			info.Confidence += timeparse.WeightRange
		} else if clock, ok := uc.parser.ParseSingleClock(message); ok {
			oneHour := time.Hour
			info.Time = &clock
			info.Duration = &oneHour
			info.Confidence += timeparse.WeightSingle
		}
	}

	if label, ok := category.Match(lower); ok {
		info.Category = label
		info.Confidence += chat.WeightCategory
	}

	uc.l.Debugf(ctx, "chat.usecase.extract: intent=%s confidence=%d", info.Intent, info.Confidence)
	return info
}
