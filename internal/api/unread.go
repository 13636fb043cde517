package api

import (
	"github.com/repline-dev/repline/internal/domain"
)

type UnreadCountsResponse struct {
	Total        int64                         `json:"total"`
	ByProgram    map[domain.ProgramId]int64    `json:"by_program"`
	BySubmission map[domain.SubmissionId]int64 `json:"by_submission"`
}

func NewUnreadCountsResponse(c *domain.UnreadCounts) UnreadCountsResponse {
	return UnreadCountsResponse{
		Total:        c.Total,
		ByProgram:    c.ByProgram,
		BySubmission: c.BySubmission,
	}
}
