package pg

import (
	"database/sql"
	"fmt"

	"github.com/repline-dev/repline/internal/domain"
)

// ListSubmissions builds the list view in one pass: submission row,
// student name, last-message preview, message count and the caller's
// unread count, ordered by most recent activity. Lateral joins keep it
// a single round trip per page instead of N+1 per-thread fetches.
func (s *Storage) ListSubmissions(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error) {
	rows, err := s.db.Query(`
        SELECT
            sub.id, sub.program_id, sub.student_id, sub.title,
            sub.created_at, sub.updated_at,
            su.display_name,
            lm.author_id, lu.display_name, lm.text, lm.video_ref, lm.created_at,
            COALESCE(mc.cnt, 0),
            COALESCE(uc.cnt, 0),
            GREATEST(sub.updated_at, COALESCE(lm.created_at, sub.created_at)) AS last_activity
        FROM submissions sub
        JOIN users su ON su.id = sub.student_id
        LEFT JOIN LATERAL (
            SELECT m.author_id, m.text, m.video_ref, m.created_at
            FROM submission_messages m
            WHERE m.submission_id = sub.id
            ORDER BY m.created_at DESC, m.id DESC
            LIMIT 1
        ) lm ON TRUE
        LEFT JOIN users lu ON lu.id = lm.author_id
        LEFT JOIN LATERAL (
            SELECT COUNT(*) AS cnt
            FROM submission_messages m
            WHERE m.submission_id = sub.id
        ) mc ON TRUE
        LEFT JOIN LATERAL (
            SELECT COUNT(*) AS cnt
            FROM submission_messages m
            WHERE m.submission_id = sub.id
              AND m.author_id <> $1
              AND NOT EXISTS (
                  SELECT 1 FROM message_read_status r
                  WHERE r.message_id = m.id AND r.user_id = $1
              )
        ) uc ON TRUE
        WHERE sub.deleted_at IS NULL
          AND ($2 OR sub.student_id = $1)
          AND ($3::bigint IS NULL OR sub.program_id = $3)
        ORDER BY last_activity DESC, sub.id DESC
        LIMIT $4 OFFSET $5
    `, vis.UserId, vis.Unrestricted(), programId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submission list: %w", err)
	}
	defer rows.Close()

	summaries := []domain.SubmissionSummary{}
	for rows.Next() {
		var row domain.SubmissionSummary
		var lastAuthor sql.NullInt64
		var lastAuthorName, lastText, lastVideoRef sql.NullString
		var lastCreated sql.NullTime
		if err := rows.Scan(
			&row.Id, &row.Program, &row.Student, &row.Title,
			&row.CreatedAt, &row.UpdatedAt,
			&row.StudentName,
			&lastAuthor, &lastAuthorName, &lastText, &lastVideoRef, &lastCreated,
			&row.MessageCount,
			&row.UnreadCount,
			&row.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		if lastAuthor.Valid {
			row.LastMessage = &domain.MessagePreview{
				Author:     lastAuthor.Int64,
				AuthorName: lastAuthorName.String,
				Text:       lastText.String,
				VideoRef:   lastVideoRef.String,
				CreatedAt:  lastCreated.Time,
			}
		}
		summaries = append(summaries, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}
