package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/repline-dev/repline/internal/domain"
	internal_errors "github.com/repline-dev/repline/internal/errors"
)

func (s *Storage) CreateSubmission(creationData domain.SubmissionCreationData) (domain.Submission, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Submission{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify program exists
	var programId domain.ProgramId
	err = tx.QueryRow(
		"SELECT id FROM programs WHERE id = $1",
		creationData.Program,
	).Scan(&programId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Submission{}, internal_errors.NotFound("Program not found")
		}
		return domain.Submission{}, fmt.Errorf("failed to validate program: %w", err)
	}

	submission := domain.Submission{
		Program: creationData.Program,
		Student: creationData.Student,
		Title:   creationData.Title,
	}
	err = tx.QueryRow(`
        INSERT INTO submissions (program_id, student_id, title)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `, creationData.Program, creationData.Student, creationData.Title,
	).Scan(&submission.Id, &submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Submission{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return submission, nil
}

// GetSubmission returns a live submission if the caller may see it.
// Soft-deleted rows are indistinguishable from missing ones here.
func (s *Storage) GetSubmission(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error) {
	var submission domain.Submission
	err := s.db.QueryRow(`
        SELECT id, program_id, student_id, title, created_at, updated_at
        FROM submissions
        WHERE id = $1 AND deleted_at IS NULL
    `, id).Scan(
		&submission.Id, &submission.Program, &submission.Student,
		&submission.Title, &submission.CreatedAt, &submission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Submission{}, internal_errors.NotFound("Submission not found")
		}
		return domain.Submission{}, fmt.Errorf("failed to fetch submission: %w", err)
	}

	if !vis.CanAccess(submission.Student) {
		return domain.Submission{}, internal_errors.AccessDenied("Submission belongs to another student")
	}
	return submission, nil
}

// SubmissionIncludingDeleted ignores the soft-delete filter. Used only
// internally: delete idempotency checks and audit reads. Not reachable
// from any list/detail endpoint.
func (s *Storage) SubmissionIncludingDeleted(id domain.SubmissionId) (domain.Submission, error) {
	var submission domain.Submission
	err := s.db.QueryRow(`
        SELECT id, program_id, student_id, title, created_at, updated_at, deleted_at
        FROM submissions
        WHERE id = $1
    `, id).Scan(
		&submission.Id, &submission.Program, &submission.Student,
		&submission.Title, &submission.CreatedAt, &submission.UpdatedAt, &submission.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Submission{}, internal_errors.NotFound("Submission not found")
		}
		return domain.Submission{}, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return submission, nil
}

// SoftDeleteSubmission marks the submission deleted in one statement.
// Messages and read receipts stay behind for history.
func (s *Storage) SoftDeleteSubmission(id domain.SubmissionId) error {
	result, err := s.db.Exec(`
        UPDATE submissions
        SET deleted_at = NOW() AT TIME ZONE 'utc'
        WHERE id = $1 AND deleted_at IS NULL
    `, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete submission: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// Distinguish "never existed" from "already deleted".
		existing, err := s.SubmissionIncludingDeleted(id)
		if err != nil {
			return err
		}
		if existing.Deleted() {
			return internal_errors.AlreadyDeleted("Submission already deleted")
		}
		return fmt.Errorf("soft delete affected no rows for live submission %d", id)
	}
	return nil
}

// TouchSubmission refreshes updated_at after a message append. Callers
// treat failure as non-fatal; the message itself is already durable.
func (s *Storage) TouchSubmission(id domain.SubmissionId) error {
	_, err := s.db.Exec(`
        UPDATE submissions
        SET updated_at = NOW() AT TIME ZONE 'utc'
        WHERE id = $1 AND deleted_at IS NULL
    `, id)
	if err != nil {
		return fmt.Errorf("failed to touch submission: %w", err)
	}
	return nil
}
