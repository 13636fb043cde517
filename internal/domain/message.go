package domain

import (
	"time"
)

type MessageCreationData struct {
	Submission SubmissionId
	Author     User
	Text       MsgText
	VideoRef   VideoRef
}

// Message is append-only: no update or delete is exposed anywhere.
// Ordering inside a submission is by CreatedAt with Id as tie-break.
type Message struct {
	Id         MsgId
	Submission SubmissionId
	Author     User
	Text       MsgText
	VideoRef   VideoRef
	CreatedAt  time.Time
	// IsRead is per-caller decoration filled in by list queries,
	// not a column of the message itself. Self-authored messages
	// always report true.
	IsRead bool
}
