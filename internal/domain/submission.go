package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type SubmissionCreationData struct {
	Program ProgramId
	Student UserId
	Title   SubmissionTitle
}

type Submission struct {
	Id        SubmissionId
	Program   ProgramId
	Student   UserId
	Title     SubmissionTitle
	CreatedAt time.Time
	UpdatedAt time.Time
	// DeletedAt is set once by an admin soft delete and never cleared.
	// Rows stay in the store for history; all list/read paths filter on it.
	DeletedAt *time.Time
}

func (s *Submission) Deleted() bool {
	return s.DeletedAt != nil
}

// SubmissionSummary is one row of the list view: the submission plus
// everything the client renders without a second round trip.
type SubmissionSummary struct {
	Submission
	StudentName  string
	LastMessage  *MessagePreview
	MessageCount int64
	UnreadCount  int64
	// LastActivity = max(UpdatedAt, last message CreatedAt), CreatedAt when empty.
	LastActivity time.Time
}

// MessagePreview is the last-message fragment embedded in a summary row.
type MessagePreview struct {
	Author     UserId
	AuthorName string
	Text       MsgText
	VideoRef   VideoRef
	CreatedAt  time.Time
}
