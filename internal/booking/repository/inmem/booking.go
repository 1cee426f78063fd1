package inmem

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedula/internal/booking"
	repo "schedula/internal/booking/repository"
)

// CreateBooking inserts a new booking and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b := booking.Booking{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Category:    opt.Category,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		ClientName:  opt.ClientName,
		ClientEmail: opt.ClientEmail,
		Status:      booking.StatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.bookings[b.ID] = b
	return b, nil
}

// GetOneBooking retrieves a single booking by id.
// Returns zero-value Booking (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[opt.ID]
	if !ok {
		return booking.Booking{}, nil
	}
	return b, nil
}

// ListBookings returns bookings starting within [From, To], ascending by
// start time, optionally narrowed by a keyword query.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []booking.Booking
	for _, b := range r.bookings {
		if b.StartTime.Before(opt.From) || b.StartTime.After(opt.To) {
			continue
		}
		if opt.Query != "" && !matchesQuery(b, opt.Query) {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// ListOverlapping returns bookings overlapping the half-open [Start, End).
func (r *implRepository) ListOverlapping(ctx context.Context, opt repo.OverlapOptions) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []booking.Booking
	for _, b := range r.bookings {
		if b.ID == opt.ExcludeID {
			continue
		}
		if b.StartTime.Before(opt.End) && b.EndTime.After(opt.Start) {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// UpdateBooking replaces the stored state of a booking.
func (r *implRepository) UpdateBooking(ctx context.Context, opt repo.UpdateBookingOptions) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[opt.ID]
	if !ok {
		return booking.Booking{}, repo.ErrRecordNotFound
	}

	b.Title = opt.Title
	b.Description = opt.Description
	b.Category = opt.Category
	b.StartTime = opt.StartTime
	b.EndTime = opt.EndTime
	b.ClientName = opt.ClientName
	b.ClientEmail = opt.ClientEmail
	b.UpdatedAt = time.Now()

	r.bookings[opt.ID] = b
	return b, nil
}

// DeleteBooking removes a booking by id.
func (r *implRepository) DeleteBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return repo.ErrRecordNotFound
	}
	delete(r.bookings, id)
	return nil
}

// SaveTranscript is a no-op for the in-memory backend.
func (r *implRepository) SaveTranscript(ctx context.Context, opt repo.SaveTranscriptOptions) error {
	return nil
}

func matchesQuery(b booking.Booking, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{b.Title, b.Description, b.Category, b.ClientName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
