package repository

import "time"

// CreateBookingOptions holds parameters for inserting a new Booking.
type CreateBookingOptions struct {
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
	ClientEmail string
}

// GetOneBookingOptions holds filter parameters for fetching a single Booking.
type GetOneBookingOptions struct {
	ID string
}

// ListBookingsOptions selects bookings with start time in [From, To],
// ascending by start time. A non-empty Query narrows the result to rows
// whose title, description, category or client name contains it
// (case-insensitive).
type ListBookingsOptions struct {
	From  time.Time
	To    time.Time
	Query string
}

// OverlapOptions selects bookings whose [start, end) interval overlaps
// [Start, End) — half-open, so touching boundaries do not overlap.
// ExcludeID omits one booking, used when re-checking an update target.
type OverlapOptions struct {
	Start     time.Time
	End       time.Time
	ExcludeID string
}

// UpdateBookingOptions holds the full replacement state for a Booking.
type UpdateBookingOptions struct {
	ID          string
	Title       string
	Description string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	ClientName  string
	ClientEmail string
}

// SaveTranscriptOptions holds one chat exchange.
type SaveTranscriptOptions struct {
	SessionID string
	Message   string
	Response  string
}
