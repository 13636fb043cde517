package api

import (
	"time"

	"github.com/repline-dev/repline/internal/domain"
)

// Request DTOs

type CreateSubmissionRequest struct {
	Title string `json:"title" validate:"required"`
}

// Response DTOs

type SubmissionResponse struct {
	Id        domain.SubmissionId `json:"id"`
	ProgramId domain.ProgramId    `json:"program_id"`
	StudentId domain.UserId       `json:"student_id"`
	Title     string              `json:"title"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type SubmissionSummaryResponse struct {
	SubmissionResponse
	StudentName  string                  `json:"student_name"`
	LastMessage  *MessagePreviewResponse `json:"last_message,omitempty"`
	MessageCount int64                   `json:"message_count"`
	UnreadCount  int64                   `json:"unread_count"`
	LastActivity time.Time               `json:"last_activity"`
}

type MessagePreviewResponse struct {
	AuthorId   domain.UserId `json:"author_id"`
	AuthorName string        `json:"author_name"`
	Text       string        `json:"text"`
	VideoRef   string        `json:"video_ref,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionSummaryResponse `json:"submissions"`
}

func NewSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		Id:        s.Id,
		ProgramId: s.Program,
		StudentId: s.Student,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSubmissionListResponse(summaries []domain.SubmissionSummary) SubmissionListResponse {
	out := make([]SubmissionSummaryResponse, 0, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		row := SubmissionSummaryResponse{
			SubmissionResponse: NewSubmissionResponse(&s.Submission),
			StudentName:        s.StudentName,
			MessageCount:       s.MessageCount,
			UnreadCount:        s.UnreadCount,
			LastActivity:       s.LastActivity,
		}
		if s.LastMessage != nil {
			row.LastMessage = &MessagePreviewResponse{
				AuthorId:   s.LastMessage.Author,
				AuthorName: s.LastMessage.AuthorName,
				Text:       s.LastMessage.Text,
				VideoRef:   s.LastMessage.VideoRef,
				CreatedAt:  s.LastMessage.CreatedAt,
			}
		}
		out = append(out, row)
	}
	return SubmissionListResponse{Submissions: out}
}
