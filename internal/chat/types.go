package chat

import (
	"time"

	"schedula/internal/booking"
	"schedula/pkg/timeparse"
)

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentBook    Intent = "book"
	IntentQuery   Intent = "query"
	IntentDelete  Intent = "delete"
	IntentUpdate  Intent = "update"
	IntentGeneral Intent = "general"
)

// ExtractedInfo is everything the interpreter pulled out of one message.
// Pointer fields are nil when the message did not mention them.
type ExtractedInfo struct {
	Intent     Intent
	Date       *time.Time
	Time       *timeparse.Clock
	EndTime    *timeparse.Clock
	Duration   *time.Duration
	Category   string
	Confidence int
}

// InterpretInput is one inbound chat message.
type InterpretInput struct {
	Message string
}

// InterpretOutput is the composed reply plus any side effects.
type InterpretOutput struct {
	Response       string
	Suggestions    []string
	ActionTaken    bool
	BookingCreated *booking.Booking
	Extracted      ExtractedInfo
}
