package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"schedula/internal/booking"
	"schedula/internal/booking/repository"
	"schedula/internal/booking/repository/inmem"
	bookingUC "schedula/internal/booking/usecase"
	"schedula/internal/chat"
	"schedula/internal/chat/session"
	"schedula/internal/chat/usecase"
	"schedula/pkg/timeparse"
)

// refDate is the interpreter's "today": Saturday, July 5 2025.
var refDate = time.Date(2025, 7, 5, 0, 0, 0, 0, time.Local)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// failingTranscripts refuses every save, for exercising the best-effort
// transcript path.
type failingTranscripts struct {
	calls int
}

func (f *failingTranscripts) SaveTranscript(ctx context.Context, opt repository.SaveTranscriptOptions) error {
	f.calls++
	return errors.New("transcript store unavailable")
}

// newTestEnv wires the interpreter against the in-memory store, so tests
// exercise the real extraction, defaults and executors end to end.
func newTestEnv(t *testing.T, strict bool) (chat.UseCase, booking.UseCase) {
	t.Helper()
	return newTestEnvWithTranscripts(t, strict, nil)
}

// newTestEnvWithTranscripts is newTestEnv with the transcript store swapped
// out; a nil transcripts falls back to the in-memory repository.
func newTestEnvWithTranscripts(t *testing.T, strict bool, transcripts repository.TranscriptRepository) (chat.UseCase, booking.UseCase) {
	t.Helper()

	l := mockLogger{}
	repo := inmem.New(l)
	bookings := bookingUC.New(l, repo)
	if transcripts == nil {
		transcripts = repo
	}

	sessions, err := session.NewStore(16)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}

	interpreter := usecase.New(
		l,
		usecase.Config{
			ReferenceDate:   refDate,
			DefaultClock:    timeparse.Clock{Hour: 10},
			DefaultDuration: time.Hour,
			QueryWindowDays: 7,
			StrictUpdate:    strict,
		},
		timeparse.NewParser(),
		bookings,
		transcripts,
		sessions,
	)

	return interpreter, bookings
}

// mustCreate seeds one booking through the real use case.
func mustCreate(t *testing.T, uc booking.UseCase, title string, start, end time.Time) booking.Booking {
	t.Helper()

	b, err := uc.Create(context.Background(), booking.CreateInput{
		Title:     title,
		Category:  "Training",
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("seed booking %q: %v", title, err)
	}
	return b
}

// july returns a clock time on the given July 2025 day, local time.
func july(day, hour, minute int) time.Time {
	return time.Date(2025, 7, day, hour, minute, 0, 0, time.Local)
}
