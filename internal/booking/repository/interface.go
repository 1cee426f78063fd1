package repository

import (
	"context"

	"schedula/internal/booking"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	BookingRepository
	TranscriptRepository
}

// BookingRepository defines all data access methods for the Booking entity.
type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
	ListOverlapping(ctx context.Context, opt OverlapOptions) ([]booking.Booking, error)
	UpdateBooking(ctx context.Context, opt UpdateBookingOptions) (booking.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// TranscriptRepository persists chat exchanges for audit. Best-effort:
// callers log failures and move on.
type TranscriptRepository interface {
	SaveTranscript(ctx context.Context, opt SaveTranscriptOptions) error
}
