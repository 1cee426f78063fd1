package usecase

import (
	"time"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
	"schedula/internal/chat/session"
	pkgLog "schedula/pkg/log"
	"schedula/pkg/timeparse"
)

// Config is the interpreter's scheduling policy. ReferenceDate is the
// injected "today"; the interpreter never reads the wall clock for
// date resolution, so the same message always resolves the same way.
type Config struct {
	ReferenceDate   time.Time
	DefaultClock    timeparse.Clock
	DefaultDuration time.Duration
	QueryWindowDays int

	// StrictUpdate refuses ambiguous update targets instead of picking
	// the first booking of the day, and keeps the conflict re-check on.
	StrictUpdate bool
}

type implUseCase struct {
	l           pkgLog.Logger
	cfg         Config
	parser      *timeparse.Parser
	bookingUC   booking.UseCase
	transcripts repository.TranscriptRepository
	sessions    *session.Store
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	cfg Config,
	parser *timeparse.Parser,
	bookingUC booking.UseCase,
	transcripts repository.TranscriptRepository,
	sessions *session.Store,
) *implUseCase {
	return &implUseCase{
		l:           l,
		cfg:         cfg,
		parser:      parser,
		bookingUC:   bookingUC,
		transcripts: transcripts,
		sessions:    sessions,
	}
}
