package usecase

import (
	"schedula/internal/booking/repository"
	pkgLog "schedula/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	locks *bucketLocks
}

// New creates a new booking UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		locks: newBucketLocks(),
	}
}
