package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"schedula/internal/booking"
	"schedula/internal/chat"
	"schedula/internal/model"
)

func interpret(t *testing.T, uc chat.UseCase, message string) chat.InterpretOutput {
	t.Helper()

	out, err := uc.Interpret(context.Background(), model.Scope{SessionID: "test-session"}, chat.InterpretInput{Message: message})
	if err != nil {
		t.Fatalf("Interpret(%q): %v", message, err)
	}
	return out
}

func TestInterpretEmptyMessage(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	_, err := interpreter.Interpret(context.Background(), model.Scope{SessionID: "s"}, chat.InterpretInput{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestInterpretBookWithDefaults(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)

	out := interpret(t, interpreter, "book training tomorrow at 2 PM")

	if !out.ActionTaken {
		t.Fatal("ActionTaken = false")
	}
	if out.BookingCreated == nil {
		t.Fatalf("BookingCreated = nil, response: %s", out.Response)
	}

	created := *out.BookingCreated
	if created.Title != "Training Session" {
		t.Errorf("Title = %q, want %q", created.Title, "Training Session")
	}
	if created.Category != "Training" {
		t.Errorf("Category = %q, want %q", created.Category, "Training")
	}
	if want := july(6, 14, 0); !created.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", created.StartTime, want)
	}
	if want := july(6, 15, 0); !created.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", created.EndTime, want)
	}
	if !strings.Contains(out.Response, "booking is confirmed") {
		t.Errorf("unexpected response: %s", out.Response)
	}

	stored, err := bookings.Detail(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if stored.ClientName != "Client" {
		t.Errorf("ClientName = %q, want default", stored.ClientName)
	}
	if stored.Description != "Session scheduled via Schedula AI" {
		t.Errorf("Description = %q", stored.Description)
	}
}

func TestInterpretBookBareDefaults(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	// No date, no time: tomorrow at the default hour for the default length.
	out := interpret(t, interpreter, "please schedule a session")

	if out.BookingCreated == nil {
		t.Fatalf("BookingCreated = nil, response: %s", out.Response)
	}
	if want := july(6, 10, 0); !out.BookingCreated.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", out.BookingCreated.StartTime, want)
	}
	if want := july(6, 11, 0); !out.BookingCreated.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", out.BookingCreated.EndTime, want)
	}
}

func TestInterpretBookCategoryTitle(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "book an azure session tomorrow at 9 AM")

	if out.BookingCreated == nil {
		t.Fatalf("BookingCreated = nil, response: %s", out.Response)
	}
	if out.BookingCreated.Title != "Azure Training" {
		t.Errorf("Title = %q, want %q", out.BookingCreated.Title, "Azure Training")
	}
	if out.BookingCreated.Category != "Azure" {
		t.Errorf("Category = %q, want %q", out.BookingCreated.Category, "Azure")
	}
}

func TestInterpretBookConflict(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	mustCreate(t, bookings, "Existing Session", july(6, 14, 0), july(6, 15, 0))

	out := interpret(t, interpreter, "book training tomorrow at 2 PM")

	if out.BookingCreated != nil {
		t.Fatal("conflicting booking was created")
	}
	if out.ActionTaken {
		t.Error("ActionTaken = true on failure")
	}
	if !strings.Contains(out.Response, "conflicts") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretBookAdjacentSlotAllowed(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	mustCreate(t, bookings, "Existing Session", july(6, 13, 0), july(6, 14, 0))

	// [13,14) then [14,15): touching boundaries are not a conflict.
	out := interpret(t, interpreter, "book training tomorrow at 2 PM")

	if out.BookingCreated == nil {
		t.Fatalf("adjacent slot rejected, response: %s", out.Response)
	}
}

func TestInterpretBookPastDateBlocked(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "book a session on July 1 at 10 AM")

	if out.BookingCreated != nil {
		t.Fatal("past-date booking was created")
	}
	if !strings.Contains(out.Response, "past dates") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretBookOnReferenceDateAllowed(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "book a session today at 4 PM")

	if out.BookingCreated == nil {
		t.Fatalf("reference-date booking rejected, response: %s", out.Response)
	}
	if want := july(5, 16, 0); !out.BookingCreated.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", out.BookingCreated.StartTime, want)
	}
}

func TestInterpretDeleteDay(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	mustCreate(t, bookings, "Morning Sync", july(12, 9, 0), july(12, 10, 0))
	mustCreate(t, bookings, "Afternoon Review", july(12, 14, 0), july(12, 16, 0))
	keep := mustCreate(t, bookings, "Other Day", july(13, 9, 0), july(13, 10, 0))

	out := interpret(t, interpreter, "clear off my 12-Jul meetings")

	if !out.ActionTaken {
		t.Fatal("ActionTaken = false")
	}
	if !strings.Contains(out.Response, "Successfully deleted 2 sessions") {
		t.Errorf("unexpected response: %s", out.Response)
	}
	if !strings.Contains(out.Response, "Morning Sync") || !strings.Contains(out.Response, "Afternoon Review") {
		t.Errorf("deleted titles missing from response: %s", out.Response)
	}

	// The neighbouring day is untouched.
	if _, err := bookings.Detail(context.Background(), keep.ID); err != nil {
		t.Errorf("booking on other day was deleted: %v", err)
	}
}

func TestInterpretDeleteEmptyDay(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "cancel my July 20 sessions")

	if !out.ActionTaken {
		t.Fatal("ActionTaken = false: zero matches is still a success")
	}
	if !strings.Contains(out.Response, "No sessions found to delete") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretDeleteWithoutDate(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "delete my bookings")

	if out.ActionTaken {
		t.Fatal("ActionTaken = true without a date")
	}
	if !strings.Contains(out.Response, "specify a date") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretUpdateLenient(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	first := mustCreate(t, bookings, "Morning Sync", july(12, 9, 0), july(12, 10, 30))
	mustCreate(t, bookings, "Afternoon Review", july(12, 14, 0), july(12, 15, 0))

	// Lenient policy: earliest booking of the day is the target, the
	// original 90-minute length is preserved from the new start.
	out := interpret(t, interpreter, "change my July 12 session from 9:00 AM to 11:00 AM")

	if !out.ActionTaken {
		t.Fatalf("ActionTaken = false, response: %s", out.Response)
	}
	if !strings.Contains(out.Response, "update is confirmed") {
		t.Errorf("unexpected response: %s", out.Response)
	}

	got, err := bookings.Detail(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if want := july(12, 11, 0); !got.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, want)
	}
	if want := july(12, 12, 30); !got.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", got.EndTime, want)
	}
}

func TestInterpretUpdateStrictAmbiguity(t *testing.T) {
	interpreter, bookings := newTestEnv(t, true)
	mustCreate(t, bookings, "Morning Sync", july(12, 9, 0), july(12, 10, 0))
	mustCreate(t, bookings, "Afternoon Review", july(12, 14, 0), july(12, 15, 0))

	out := interpret(t, interpreter, "change my July 12 session to 11 am")

	if out.ActionTaken {
		t.Fatal("strict mode acted on an ambiguous target")
	}
	if !strings.Contains(out.Response, "Multiple bookings") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretUpdateNoTargets(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "move my July 18 session to 11 am")

	if out.ActionTaken {
		t.Fatal("ActionTaken = true with nothing to update")
	}
	if !strings.Contains(out.Response, "No bookings found to update") {
		t.Errorf("unexpected response: %s", out.Response)
	}
}

func TestInterpretQueryDay(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	mustCreate(t, bookings, "Morning Sync", july(12, 9, 0), july(12, 10, 0))

	out := interpret(t, interpreter, "show me my calendar for July 12")

	if !out.ActionTaken {
		t.Fatal("ActionTaken = false")
	}
	if !strings.Contains(out.Response, "Morning Sync") {
		t.Errorf("booking missing from response: %s", out.Response)
	}
	if !strings.Contains(out.Response, "Sat Jul 12 2025") {
		t.Errorf("date range wording missing: %s", out.Response)
	}
}

func TestInterpretQueryWindow(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)
	mustCreate(t, bookings, "In Window", july(8, 9, 0), july(8, 10, 0))
	mustCreate(t, bookings, "Out Of Window", july(25, 9, 0), july(25, 10, 0))

	out := interpret(t, interpreter, "what sessions do I have?")

	if !strings.Contains(out.Response, "In Window") {
		t.Errorf("in-window booking missing: %s", out.Response)
	}
	if strings.Contains(out.Response, "Out Of Window") {
		t.Errorf("out-of-window booking leaked in: %s", out.Response)
	}
	if !strings.Contains(out.Response, "the next 7 days") {
		t.Errorf("window wording missing: %s", out.Response)
	}
}

func TestInterpretQueryEmpty(t *testing.T) {
	interpreter, _ := newTestEnv(t, false)

	out := interpret(t, interpreter, "show me my calendar for July 19")

	if !strings.Contains(out.Response, "don't have any sessions") {
		t.Errorf("unexpected response: %s", out.Response)
	}
	if len(out.Suggestions) == 0 {
		t.Error("no suggestions on empty calendar")
	}
}

func TestInterpretGeneralGreeting(t *testing.T) {
	interpreter, bookings := newTestEnv(t, false)

	out := interpret(t, interpreter, "hello!")

	if out.ActionTaken {
		t.Fatal("greeting triggered an action")
	}
	if !strings.Contains(out.Response, "Schedula") {
		t.Errorf("unexpected response: %s", out.Response)
	}

	// No side effects on the calendar.
	all, err := bookings.List(context.Background(), booking.ListInput{From: july(1, 0, 0), To: july(31, 23, 59)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("greeting created %d bookings", len(all))
	}
}

func TestInterpretRepliesWhenTranscriptSaveFails(t *testing.T) {
	transcripts := &failingTranscripts{}
	interpreter, _ := newTestEnvWithTranscripts(t, false, transcripts)

	out := interpret(t, interpreter, "book training tomorrow at 2 PM")

	// Transcript persistence is best-effort: the booking still lands and
	// the confirmation still goes out.
	if out.BookingCreated == nil {
		t.Fatalf("booking not created, response: %s", out.Response)
	}
	if !out.ActionTaken {
		t.Error("ActionTaken = false")
	}
	if !strings.Contains(out.Response, "I've booked") {
		t.Errorf("unexpected response: %s", out.Response)
	}
	if transcripts.calls != 1 {
		t.Errorf("SaveTranscript calls = %d, want 1", transcripts.calls)
	}
}
