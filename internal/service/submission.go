package service

import (
	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/domain"
	"github.com/repline-dev/repline/internal/errors"
)

type SubmissionService interface {
	Create(creationData domain.SubmissionCreationData) (domain.Submission, error)
	Get(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error)
	List(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error)
	Delete(id domain.SubmissionId, vis domain.Visibility) error
}

type Submission struct {
	storage   SubmissionStorage
	validator SubmissionValidator
	cfg       *config.Public
}

type SubmissionStorage interface {
	CreateSubmission(creationData domain.SubmissionCreationData) (domain.Submission, error)
	GetSubmission(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error)
	ListSubmissions(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error)
	SoftDeleteSubmission(id domain.SubmissionId) error
}

type SubmissionValidator interface {
	Title(title string) error
}

func NewSubmission(storage SubmissionStorage, validator SubmissionValidator, cfg *config.Public) *Submission {
	return &Submission{storage, validator, cfg}
}

func (s *Submission) Create(creationData domain.SubmissionCreationData) (domain.Submission, error) {
	if err := s.validator.Title(creationData.Title); err != nil {
		return domain.Submission{}, err
	}
	return s.storage.CreateSubmission(creationData)
}

func (s *Submission) Get(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error) {
	return s.storage.GetSubmission(id, vis)
}

func (s *Submission) List(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error) {
	if limit == 0 {
		limit = s.cfg.DefaultPageLimit
	}
	if limit < 0 || offset < 0 {
		return nil, errors.Validation("Limit and offset must not be negative")
	}
	if limit > s.cfg.MaxPageLimit {
		return nil, errors.Validation("Limit is too large")
	}
	return s.storage.ListSubmissions(vis, programId, limit, offset)
}

// Delete soft-deletes a submission. Admin only; the router enforces
// this too, but the service re-checks so no alternative wiring can
// skip it.
func (s *Submission) Delete(id domain.SubmissionId, vis domain.Visibility) error {
	if !vis.Admin {
		return errors.AccessDenied("Admin privileges required")
	}
	return s.storage.SoftDeleteSubmission(id)
}
