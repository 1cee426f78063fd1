package booking

import "time"

// Booking is a scheduled session on the calendar.
type Booking struct {
	ID          string
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
	ClientEmail string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Duration is the booked interval length.
func (b Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Booking status values.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
	ClientEmail string
}

// ListInput selects bookings whose start time falls in [From, To].
type ListInput struct {
	From time.Time
	To   time.Time
}

type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
	ClientEmail string

	// SkipConflictCheck bypasses the overlap re-check. The HTTP API never
	// sets it; the chat interpreter sets it under the lenient update policy.
	SkipConflictCheck bool
}

type SearchInput struct {
	Query string
	From  *time.Time
	To    *time.Time
}
