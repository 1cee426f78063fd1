package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"schedula/internal/booking"
	repo "schedula/internal/booking/repository"
)

// dbBooking mirrors the bookings table row.
type dbBooking struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	ClientName  string    `db:"client_name"`
	ClientEmail string    `db:"client_email"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (d dbBooking) toEntity() booking.Booking {
	return booking.Booking{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toEntities(rows []dbBooking) []booking.Booking {
	out := make([]booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out
}

// CreateBooking inserts a new booking row and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	const query = `
		INSERT INTO bookings (id, title, description, category, start_time, end_time,
			client_name, client_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, title, description, category, start_time, end_time,
			client_name, client_email, status, created_at, updated_at`

	var row dbBooking
	err := r.db.GetContext(ctx, &row, query,
		uuid.NewString(), opt.Title, opt.Description, opt.Category,
		opt.StartTime, opt.EndTime, opt.ClientName, opt.ClientEmail, booking.StatusConfirmed,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	return row.toEntity(), nil
}

// GetOneBooking retrieves a single booking by id.
// Returns zero-value Booking (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	const query = `
		SELECT id, title, description, category, start_time, end_time,
			client_name, client_email, status, created_at, updated_at
		FROM bookings WHERE id = $1 LIMIT 1`

	var row dbBooking
	err := r.db.GetContext(ctx, &row, query, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return row.toEntity(), nil
}

// ListBookings returns bookings starting within [From, To] ascending by start
// time, optionally narrowed by a keyword query.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	query, args := buildListQuery(opt)

	var rows []dbBooking
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return toEntities(rows), nil
}

// ListOverlapping returns bookings overlapping the half-open [Start, End).
func (r *implRepository) ListOverlapping(ctx context.Context, opt repo.OverlapOptions) ([]booking.Booking, error) {
	query, args := buildOverlapQuery(opt)

	var rows []dbBooking
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOverlapping"), err)
		return nil, repo.ErrFailedToList
	}
	return toEntities(rows), nil
}

// UpdateBooking replaces the stored state of a booking.
func (r *implRepository) UpdateBooking(ctx context.Context, opt repo.UpdateBookingOptions) (booking.Booking, error) {
	const query = `
		UPDATE bookings
		SET title = $2, description = $3, category = $4, start_time = $5,
			end_time = $6, client_name = $7, client_email = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, category, start_time, end_time,
			client_name, client_email, status, created_at, updated_at`

	var row dbBooking
	err := r.db.GetContext(ctx, &row, query,
		opt.ID, opt.Title, opt.Description, opt.Category,
		opt.StartTime, opt.EndTime, opt.ClientName, opt.ClientEmail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, repo.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToUpdate
	}
	return row.toEntity(), nil
}

// DeleteBooking removes a booking by id.
func (r *implRepository) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBooking"), err)
		return repo.ErrFailedToDelete
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("DeleteBooking"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrRecordNotFound
	}
	return nil
}
