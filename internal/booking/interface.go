package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Booking CRUD
	Create(ctx context.Context, input CreateInput) (Booking, error)
	List(ctx context.Context, input ListInput) ([]Booking, error)
	Detail(ctx context.Context, id string) (Booking, error)
	Update(ctx context.Context, input UpdateInput) (Booking, error)
	Delete(ctx context.Context, id string) error

	// Keyword search over title, description, category and client name.
	Search(ctx context.Context, input SearchInput) ([]Booking, error)
}
