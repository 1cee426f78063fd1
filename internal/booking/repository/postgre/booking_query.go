package postgre

import (
	"fmt"

	repo "schedula/internal/booking/repository"
)

const selectColumns = `id, title, description, category, start_time, end_time,
	client_name, client_email, status, created_at, updated_at`

func buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	args := []any{opt.From, opt.To}
	where := "start_time >= $1 AND start_time <= $2"

	if opt.Query != "" {
		pattern := "%" + opt.Query + "%"
		args = append(args, pattern)
		n := len(args)
		where += fmt.Sprintf(
			" AND (title ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d OR client_name ILIKE $%d)",
			n, n, n, n,
		)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM bookings WHERE %s ORDER BY start_time ASC",
		selectColumns, where,
	)
	return query, args
}

func buildOverlapQuery(opt repo.OverlapOptions) (string, []any) {
	// Half-open interval overlap: existing.start < end AND existing.end > start.
	args := []any{opt.Start, opt.End}
	where := "start_time < $2 AND end_time > $1"

	if opt.ExcludeID != "" {
		args = append(args, opt.ExcludeID)
		where += fmt.Sprintf(" AND id <> $%d", len(args))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM bookings WHERE %s ORDER BY start_time ASC",
		selectColumns, where,
	)
	return query, args
}
