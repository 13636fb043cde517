package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/domain"
	internal_errors "github.com/repline-dev/repline/internal/errors"
)

// --- Mocks ---

// MockSubmissionStorage mocks the SubmissionStorage interface.
type MockSubmissionStorage struct {
	createFunc     func(creationData domain.SubmissionCreationData) (domain.Submission, error)
	getFunc        func(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error)
	listFunc       func(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error)
	softDeleteFunc func(id domain.SubmissionId) error

	mu               sync.Mutex
	softDeleteCalled bool
	softDeleteIdArg  domain.SubmissionId
	listCalled       bool
	listLimitArg     int
	listOffsetArg    int
}

func (m *MockSubmissionStorage) CreateSubmission(creationData domain.SubmissionCreationData) (domain.Submission, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.Submission{Id: 1, Program: creationData.Program, Student: creationData.Student, Title: creationData.Title}, nil
}

func (m *MockSubmissionStorage) GetSubmission(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error) {
	if m.getFunc != nil {
		return m.getFunc(id, vis)
	}
	return domain.Submission{Id: id, Student: vis.UserId}, nil
}

func (m *MockSubmissionStorage) ListSubmissions(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error) {
	m.mu.Lock()
	m.listCalled = true
	m.listLimitArg = limit
	m.listOffsetArg = offset
	m.mu.Unlock()

	if m.listFunc != nil {
		return m.listFunc(vis, programId, limit, offset)
	}
	return []domain.SubmissionSummary{}, nil
}

func (m *MockSubmissionStorage) SoftDeleteSubmission(id domain.SubmissionId) error {
	m.mu.Lock()
	m.softDeleteCalled = true
	m.softDeleteIdArg = id
	m.mu.Unlock()

	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id)
	}
	return nil
}

// MockTitleValidator mocks the SubmissionValidator interface.
type MockTitleValidator struct {
	titleFunc func(title string) error
}

func (m *MockTitleValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

// --- Helpers ---

func testPublicConfig() *config.Public {
	return &config.Public{DefaultPageLimit: 20, MaxPageLimit: 100}
}

var (
	student = domain.Visibility{UserId: 10}
	admin   = domain.Visibility{UserId: 99, Admin: true}
)

// --- Tests ---

func TestSubmissionCreate(t *testing.T) {
	creation := domain.SubmissionCreationData{Program: 1, Student: 10, Title: "Form check week 3"}

	t.Run("success", func(t *testing.T) {
		svc := NewSubmission(&MockSubmissionStorage{}, &MockTitleValidator{}, testPublicConfig())

		sub, err := svc.Create(creation)
		require.NoError(t, err)
		assert.Equal(t, creation.Title, sub.Title)
		assert.Equal(t, creation.Student, sub.Student)
	})

	t.Run("validator rejects title", func(t *testing.T) {
		validationErr := internal_errors.Validation("Title must not be empty")
		validator := &MockTitleValidator{titleFunc: func(title string) error { return validationErr }}
		storage := &MockSubmissionStorage{createFunc: func(domain.SubmissionCreationData) (domain.Submission, error) {
			t.Fatal("storage must not be called when validation fails")
			return domain.Submission{}, nil
		}}
		svc := NewSubmission(storage, validator, testPublicConfig())

		_, err := svc.Create(creation)
		assert.ErrorIs(t, err, validationErr)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		notFound := internal_errors.NotFound("Program not found")
		storage := &MockSubmissionStorage{createFunc: func(domain.SubmissionCreationData) (domain.Submission, error) {
			return domain.Submission{}, notFound
		}}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		_, err := svc.Create(creation)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestSubmissionList(t *testing.T) {
	t.Run("zero limit uses default", func(t *testing.T) {
		storage := &MockSubmissionStorage{}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		_, err := svc.List(student, nil, 0, 0)
		require.NoError(t, err)
		assert.True(t, storage.listCalled)
		assert.Equal(t, 20, storage.listLimitArg)
	})

	t.Run("negative pagination rejected", func(t *testing.T) {
		svc := NewSubmission(&MockSubmissionStorage{}, &MockTitleValidator{}, testPublicConfig())

		_, err := svc.List(student, nil, -1, 0)
		assert.True(t, internal_errors.IsValidation(err))

		_, err = svc.List(student, nil, 10, -5)
		assert.True(t, internal_errors.IsValidation(err))
	})

	t.Run("limit above cap rejected", func(t *testing.T) {
		svc := NewSubmission(&MockSubmissionStorage{}, &MockTitleValidator{}, testPublicConfig())

		_, err := svc.List(student, nil, 101, 0)
		assert.True(t, internal_errors.IsValidation(err))
	})
}

func TestSubmissionDelete(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		storage := &MockSubmissionStorage{}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		require.NoError(t, svc.Delete(5, admin))
		assert.True(t, storage.softDeleteCalled)
		assert.Equal(t, domain.SubmissionId(5), storage.softDeleteIdArg)
	})

	t.Run("non-admin denied before storage", func(t *testing.T) {
		storage := &MockSubmissionStorage{softDeleteFunc: func(domain.SubmissionId) error {
			t.Fatal("storage must not be called for non-admin delete")
			return nil
		}}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		err := svc.Delete(5, student)
		assert.True(t, internal_errors.IsAccessDenied(err))
	})

	t.Run("already deleted propagates", func(t *testing.T) {
		storage := &MockSubmissionStorage{softDeleteFunc: func(domain.SubmissionId) error {
			return internal_errors.AlreadyDeleted("Submission already deleted")
		}}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		err := svc.Delete(5, admin)
		assert.True(t, internal_errors.IsAlreadyDeleted(err))
	})

	t.Run("unexpected storage error is not translated", func(t *testing.T) {
		boom := errors.New("socket closed")
		storage := &MockSubmissionStorage{softDeleteFunc: func(domain.SubmissionId) error { return boom }}
		svc := NewSubmission(storage, &MockTitleValidator{}, testPublicConfig())

		err := svc.Delete(5, admin)
		assert.ErrorIs(t, err, boom)
		assert.False(t, internal_errors.IsNotFound(err))
	})
}
