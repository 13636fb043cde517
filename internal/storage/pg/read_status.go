package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/repline-dev/repline/internal/domain"
	internal_errors "github.com/repline-dev/repline/internal/errors"
)

// MarkRead records that reader has seen message. Idempotent: the
// conflict on (user_id, message_id) is swallowed, so concurrent or
// repeated calls neither error nor move read_at. Thread access was
// already established upstream when the reader listed the messages;
// only message existence is re-checked here.
func (s *Storage) MarkRead(readerId domain.UserId, messageId domain.MsgId) error {
	var exists int
	err := s.db.QueryRow(
		"SELECT 1 FROM submission_messages WHERE id = $1",
		messageId,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Message not found")
		}
		return fmt.Errorf("failed to validate message: %w", err)
	}

	_, err = s.db.Exec(`
        INSERT INTO message_read_status (user_id, message_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, message_id) DO NOTHING
    `, readerId, messageId)
	if err != nil {
		return fmt.Errorf("failed to insert read status: %w", err)
	}
	return nil
}
