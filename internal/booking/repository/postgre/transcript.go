package postgre

import (
	"context"

	"github.com/google/uuid"

	repo "schedula/internal/booking/repository"
)

// SaveTranscript stores one chat exchange. Callers treat failures as
// best-effort: log and continue.
func (r *implRepository) SaveTranscript(ctx context.Context, opt repo.SaveTranscriptOptions) error {
	const query = `
		INSERT INTO chat_transcripts (id, session_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), opt.SessionID, opt.Message, opt.Response); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTranscript"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
