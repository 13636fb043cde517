package pg

import (
	"fmt"

	"github.com/repline-dev/repline/internal/domain"
)

// UnreadCounts aggregates, per submission and per program, the live
// messages the reader has not seen and did not author. Always computed
// from raw message/read-status rows; there is no counter column to
// drift. programId narrows the scope when non-nil.
func (s *Storage) UnreadCounts(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error) {
	counts := domain.UnreadCounts{
		ByProgram:    make(map[domain.ProgramId]int64),
		BySubmission: make(map[domain.SubmissionId]int64),
	}

	rows, err := s.db.Query(`
        SELECT sub.id, sub.program_id, COUNT(*)
        FROM submission_messages m
        JOIN submissions sub ON sub.id = m.submission_id
        WHERE sub.deleted_at IS NULL
          AND m.author_id <> $1
          AND NOT EXISTS (
              SELECT 1 FROM message_read_status r
              WHERE r.message_id = m.id AND r.user_id = $1
          )
          AND ($2 OR sub.student_id = $1)
          AND ($3::bigint IS NULL OR sub.program_id = $3)
        GROUP BY sub.id, sub.program_id
    `, vis.UserId, vis.Unrestricted(), programId)
	if err != nil {
		return domain.UnreadCounts{}, fmt.Errorf("failed to aggregate unread counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var submissionId domain.SubmissionId
		var program domain.ProgramId
		var n int64
		if err := rows.Scan(&submissionId, &program, &n); err != nil {
			return domain.UnreadCounts{}, fmt.Errorf("failed to scan unread row: %w", err)
		}
		counts.BySubmission[submissionId] = n
		counts.ByProgram[program] += n
		counts.Total += n
	}
	if err = rows.Err(); err != nil {
		return domain.UnreadCounts{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
