package service

import (
	"github.com/repline-dev/repline/internal/domain"
)

// ReadStatusService covers the polling side of the subsystem: marking
// messages read and fetching unread totals at the three scopes.
type ReadStatusService interface {
	MarkRead(readerId domain.UserId, messageId domain.MsgId) error
	UnreadCounts(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error)
}

type ReadStatus struct {
	storage ReadStatusStorage
}

type ReadStatusStorage interface {
	MarkRead(readerId domain.UserId, messageId domain.MsgId) error
	UnreadCounts(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error)
}

func NewReadStatus(storage ReadStatusStorage) *ReadStatus {
	return &ReadStatus{storage}
}

func (r *ReadStatus) MarkRead(readerId domain.UserId, messageId domain.MsgId) error {
	return r.storage.MarkRead(readerId, messageId)
}

func (r *ReadStatus) UnreadCounts(vis domain.Visibility, programId *domain.ProgramId) (domain.UnreadCounts, error) {
	return r.storage.UnreadCounts(vis, programId)
}
