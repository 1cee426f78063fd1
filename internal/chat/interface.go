package chat

import (
	"context"

	"schedula/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)
}
