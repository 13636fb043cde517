package service

import (
	"github.com/repline-dev/repline/internal/domain"
)

type MessageService interface {
	Create(creationData domain.MessageCreationData) (domain.Message, error)
	List(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error)
}

type Message struct {
	storage   MessageStorage
	validator MessageValidator
	sanitizer Sanitizer
}

type MessageStorage interface {
	CreateMessage(creationData domain.MessageCreationData) (domain.Message, error)
	ListMessages(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error)
}

type MessageValidator interface {
	Payload(text, videoRef string) error
}

type Sanitizer interface {
	Sanitize(text string) string
}

func NewMessage(storage MessageStorage, validator MessageValidator, sanitizer Sanitizer) *Message {
	return &Message{storage, validator, sanitizer}
}

func (m *Message) Create(creationData domain.MessageCreationData) (domain.Message, error) {
	// Sanitize before validating: markup-only text strips down to "",
	// which must fail the payload check instead of reaching storage empty.
	creationData.Text = m.sanitizer.Sanitize(creationData.Text)
	if err := m.validator.Payload(creationData.Text, creationData.VideoRef); err != nil {
		return domain.Message{}, err
	}
	return m.storage.CreateMessage(creationData)
}

func (m *Message) List(submissionId domain.SubmissionId, vis domain.Visibility) ([]domain.Message, error) {
	return m.storage.ListMessages(submissionId, vis)
}
