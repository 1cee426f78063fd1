package usecase

import (
	"time"

	"schedula/internal/chat"
)

const (
	defaultCategory    = "Training"
	defaultClientName  = "Client"
	defaultDescription = "Session scheduled via Schedula AI"
)

// draft is a fully resolved booking candidate: extracted facts with the
// policy defaults filled in for everything the message left out.
type draft struct {
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
}

// applyDefaults fills the gaps: no date means tomorrow, no time means the
// configured default hour, no duration means the configured default length.
func (uc *implUseCase) applyDefaults(info chat.ExtractedInfo) draft {
	day := uc.cfg.ReferenceDate.AddDate(0, 0, 1)
	if info.Date != nil {
		day = *info.Date
	}

	clock := uc.cfg.DefaultClock
	if info.Time != nil {
		clock = *info.Time
	}
	start := clock.On(day)

	var end time.Time
	if info.EndTime != nil {
		end = info.EndTime.On(day)
	} else {
		duration := uc.cfg.DefaultDuration
		if info.Duration != nil {
			duration = *info.Duration
		}
		end = start.Add(duration)
	}

	category := info.Category
	if category == "" {
		category = defaultCategory
	}

	// "Azure Training", "Python Training" — but never "Training Training"
	// when the category itself is the generic one.
	title := "Training Session"
	if info.Category != "" && info.Category != defaultCategory {
		title = info.Category + " Training"
	}

	return draft{
		Title:       title,
		Description: defaultDescription,
		Category:    category,
		StartTime:   start,
		EndTime:     end,
		ClientName:  defaultClientName,
	}
}
