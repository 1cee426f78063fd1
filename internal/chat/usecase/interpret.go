package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedula/internal/booking/repository"
	"schedula/internal/chat"
	"schedula/internal/model"
)

// Interpret runs one chat exchange: extract, gate on confidence, execute
// the intent against the booking store, compose the reply. Side effects
// only happen at or above the confidence gate; everything below it gets
// the greeting.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input chat.InterpretInput) (chat.InterpretOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.InterpretOutput{}, chat.ErrEmptyMessage
	}

	info := uc.extract(ctx, input.Message)
	out := chat.InterpretOutput{
		Response:    greeting,
		Suggestions: generalSuggestions(),
		Extracted:   info,
	}

	confident := info.Confidence >= chat.ConfidenceGate
	switch {
	case info.Intent == chat.IntentBook && confident:
		uc.handleBook(ctx, info, &out)
	case info.Intent == chat.IntentDelete && confident:
		uc.handleDelete(ctx, info, &out)
	case info.Intent == chat.IntentUpdate && confident:
		uc.handleUpdate(ctx, info, &out)
	case info.Intent == chat.IntentQuery && confident:
		uc.handleQuery(ctx, info, &out)
	}

	uc.sessions.Touch(sc.SessionID, info.Intent, time.Now())

	// Transcripts are audit trail, not part of the exchange contract.
	if err := uc.transcripts.SaveTranscript(ctx, repository.SaveTranscriptOptions{
		SessionID: sc.SessionID,
		Message:   input.Message,
		Response:  out.Response,
	}); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Interpret.SaveTranscript: %v", err)
	}

	return out, nil
}

func (uc *implUseCase) handleBook(ctx context.Context, info chat.ExtractedInfo, out *chat.InterpretOutput) {
	created, err := uc.executeBook(ctx, info)
	if err != nil {
		out.Response = fmt.Sprintf("I wasn't able to create that booking. %s", err)
		out.Suggestions = bookFailedSuggestions()
		return
	}

	out.Response = bookedResponse(created)
	out.Suggestions = bookedSuggestions()
	out.ActionTaken = true
	out.BookingCreated = &created
}

func (uc *implUseCase) handleDelete(ctx context.Context, info chat.ExtractedInfo, out *chat.InterpretOutput) {
	deleted, err := uc.executeDelete(ctx, info)
	if err != nil {
		out.Response = fmt.Sprintf("I wasn't able to delete those sessions. %s", err)
		out.Suggestions = deleteFailedSuggestions()
		return
	}

	out.Response = deletedResponse(deleted, *info.Date)
	out.Suggestions = deletedSuggestions()
	out.ActionTaken = true
}

func (uc *implUseCase) handleUpdate(ctx context.Context, info chat.ExtractedInfo, out *chat.InterpretOutput) {
	updated, original, err := uc.executeUpdate(ctx, info)
	if err != nil {
		out.Response = fmt.Sprintf("I wasn't able to update that session. %s", err)
		out.Suggestions = updateFailedSuggestions()
		return
	}

	out.Response = updatedResponse(updated, original)
	out.Suggestions = updatedSuggestions()
	out.ActionTaken = true
}

func (uc *implUseCase) handleQuery(ctx context.Context, info chat.ExtractedInfo, out *chat.InterpretOutput) {
	bookings, rangeText, err := uc.executeQuery(ctx, info)
	if err != nil {
		out.Response = "I encountered an error while retrieving your calendar. Please try again."
		return
	}

	out.Response = queryResponse(bookings, rangeText)
	if len(bookings) > 0 {
		out.Suggestions = querySuggestions()
	} else {
		out.Suggestions = queryEmptySuggestions()
	}
	out.ActionTaken = true
}
