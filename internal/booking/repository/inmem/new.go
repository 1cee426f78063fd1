package inmem

import (
	"sync"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
	pkgLog "schedula/pkg/log"
)

// implRepository is a map-backed store. It is the default backend when no
// Postgres DSN is configured, and the backend unit tests run against.
type implRepository struct {
	l        pkgLog.Logger
	mu       sync.RWMutex
	bookings map[string]booking.Booking
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory booking repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:        l,
		bookings: make(map[string]booking.Booking),
	}
}
