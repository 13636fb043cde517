package api

import (
	"time"

	"github.com/repline-dev/repline/internal/domain"
)

// Request DTOs

type CreateMessageRequest struct {
	Text     string `json:"text,omitempty"`
	VideoRef string `json:"video_ref,omitempty"`
}

// Response DTOs

type MessageResponse struct {
	Id           domain.MsgId        `json:"id"`
	SubmissionId domain.SubmissionId `json:"submission_id"`
	AuthorId     domain.UserId       `json:"author_id"`
	AuthorName   string              `json:"author_name"`
	Text         string              `json:"text"`
	VideoRef     string              `json:"video_ref,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	IsRead       bool                `json:"is_read"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

func NewMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		Id:           m.Id,
		SubmissionId: m.Submission,
		AuthorId:     m.Author.Id,
		AuthorName:   m.Author.DisplayName,
		Text:         m.Text,
		VideoRef:     m.VideoRef,
		CreatedAt:    m.CreatedAt,
		IsRead:       m.IsRead,
	}
}

func NewMessageListResponse(messages []domain.Message) MessageListResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageResponse(&messages[i]))
	}
	return MessageListResponse{Messages: out}
}
