package resumes

import (
	"time"

	"cv-builder/resume/model"
)

// ResumeResponse is the outward-facing representation of a saved resume.
type ResumeResponse struct {
	model.Resume
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SummaryResponse is one row of the resume list.
type SummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(r StoredResume) ResumeResponse {
	return ResumeResponse{
		Resume:    r.Record(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSummary(r StoredResume) SummaryResponse {
	return SummaryResponse{
		ID:        r.ID,
		Title:     r.Content.Title,
		UpdatedAt: r.UpdatedAt,
		CreatedAt: r.CreatedAt,
	}
}
