package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"schedula/internal/booking/repository"
	pkgLog "schedula/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sqlx.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Postgres-backed booking repository.
func New(db *sqlx.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{l: l, db: db}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking.repository.postgre.%s", method)
}
