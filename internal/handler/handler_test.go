package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/domain"
	mw "github.com/repline-dev/repline/internal/middleware"
)

// --- Mocks ---

type MockSubmissionService struct {
	MockCreate func(creationData domain.SubmissionCreationData) (domain.Submission, error)
	MockGet    func(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error)
	MockList   func(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error)
	MockDelete func(id domain.SubmissionId, vis domain.Visibility) error
}

func (m *MockSubmissionService) Create(creationData domain.SubmissionCreationData) (domain.Submission, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creationData)
	}
	return domain.Submission{Id: 1}, nil // Default behavior
}

func (m *MockSubmissionService) Get(id domain.SubmissionId, vis domain.Visibility) (domain.Submission, error) {
	if m.MockGet != nil {
		return m.MockGet(id, vis)
	}
	return domain.Submission{Id: id}, nil // Default behavior
}

func (m *MockSubmissionService) List(vis domain.Visibility, programId *domain.ProgramId, limit, offset int) ([]domain.SubmissionSummary, error) {
	if m.MockList != nil {
		return m.MockList(vis, programId, limit, offset)
	}
	return nil, nil // Default behavior
}

func (m *MockSubmissionService) Delete(id domain.SubmissionId, vis domain.Visibility) error {
	if m.MockDelete != nil {
		return m.MockDelete(id, vis)
	}
	return nil // Default behavior
}

type MockMessageService struct {
	MockCreate func(creationData domain.MessageCreationData) (domain.Message, error)
	MockList   func(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error)
}

func (m *MockMessageService) Create(creationData domain.MessageCreationData) (domain.Message, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creationData)
	}
	return domain.Message{Id: 1}, nil // Default behavior
}

func (m *MockMessageService) List(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error) {
	if m.MockList != nil {
		return m.MockList(submissionId, vis)
	}
	return nil, nil // Default behavior
}

type MockReadStatusService struct {
	MockMarkRead     func(readerId domain.UserId, messageId domain.MsgId) error
	MockUnreadCounts func(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error)
}

func (m *MockReadStatusService) MarkRead(readerId domain.UserId, messageId domain.MsgId) error {
	if m.MockMarkRead != nil {
		return m.MockMarkRead(readerId, messageId)
	}
	return nil // Default behavior
}

func (m *MockReadStatusService) UnreadCounts(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error) {
	if m.MockUnreadCounts != nil {
		return m.MockUnreadCounts(vis, programId)
	}
	return domain.UnreadCounts{}, nil // Default behavior
}

type MockHealthChecker struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil // Default behavior
}

// --- Helpers ---

func newTestHandler() *Handler {
	return New(
		&MockSubmissionService{},
		&MockMessageService{},
		&MockReadStatusService{},
		&MockHealthChecker{},
		&config.Config{},
	)
}

var (
	testStudent = &domain.User{Id: 10, Email: "student@example.com", DisplayName: "Student", Admin: false}
	testAdmin   = &domain.User{Id: 99, Email: "admin@example.com", DisplayName: "Admin", Admin: true}
)

// authedRequest builds a request with the given user injected into the
// context the same way the auth middleware does.
func authedRequest(method, target string, body io.Reader, user *domain.User) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if user != nil {
		ctx := context.WithValue(req.Context(), mw.UserClaimsKey, user)
		req = req.WithContext(ctx)
	}
	return req
}

func serve(t *testing.T, router *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
