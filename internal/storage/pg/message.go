package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/repline-dev/repline/internal/domain"
	internal_errors "github.com/repline-dev/repline/internal/errors"
	"github.com/repline-dev/repline/internal/logger"
)

// CreateMessage appends a message to a live submission the author may
// see. The submission's updated_at refresh happens after commit and is
// best-effort: the append never fails because of it.
func (s *Storage) CreateMessage(creationData domain.MessageCreationData) (domain.Message, error) {
	vis := domain.VisibilityFor(&creationData.Author)

	tx, err := s.db.Begin()
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Same access rule as GetSubmission, inside the insert transaction.
	var studentId domain.UserId
	err = tx.QueryRow(
		"SELECT student_id FROM submissions WHERE id = $1 AND deleted_at IS NULL",
		creationData.Submission,
	).Scan(&studentId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Message{}, internal_errors.NotFound("Submission not found")
		}
		return domain.Message{}, fmt.Errorf("failed to validate submission: %w", err)
	}
	if !vis.CanAccess(studentId) {
		return domain.Message{}, internal_errors.AccessDenied("Submission belongs to another student")
	}

	message := domain.Message{
		Submission: creationData.Submission,
		Author:     creationData.Author,
		Text:       creationData.Text,
		VideoRef:   creationData.VideoRef,
		IsRead:     true, // own message
	}
	err = tx.QueryRow(`
        INSERT INTO submission_messages (submission_id, author_id, text, video_ref)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `, creationData.Submission, creationData.Author.Id, creationData.Text, creationData.VideoRef,
	).Scan(&message.Id, &message.CreatedAt)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Message{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Deliberately outside the transaction: a crash here leaves a stale
	// updated_at, which only skews list ordering until the next append.
	if err := s.TouchSubmission(creationData.Submission); err != nil {
		logger.Log.Warn("failed to refresh submission activity", "submission", creationData.Submission, "err", err)
	}

	return message, nil
}

// ListMessages returns the full ordered message list of a submission,
// decorated with author info and the caller's read state. Polling
// clients re-call this; there is no cursor.
func (s *Storage) ListMessages(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error) {
	if _, err := s.GetSubmission(submissionId, vis); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
        SELECT
            m.id, m.submission_id, m.text, m.video_ref, m.created_at,
            u.id, u.email, u.display_name, u.is_admin,
            (m.author_id = $2 OR r.message_id IS NOT NULL) AS is_read
        FROM submission_messages m
        JOIN users u ON u.id = m.author_id
        LEFT JOIN message_read_status r ON r.message_id = m.id AND r.user_id = $2
        WHERE m.submission_id = $1
        ORDER BY m.created_at, m.id
    `, submissionId, vis.UserId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.Id, &msg.Submission, &msg.Text, &msg.VideoRef, &msg.CreatedAt,
			&msg.Author.Id, &msg.Author.Email, &msg.Author.DisplayName, &msg.Author.Admin,
			&msg.IsRead,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return messages, nil
}
