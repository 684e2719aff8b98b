package drafts

import (
	"time"

	"cv-builder/resume/model"
)

// DraftResponse is the outward-facing representation of a draft.
type DraftResponse struct {
	DraftID   string      `json:"draftId"`
	ResumeID  string      `json:"resumeId,omitempty"`
	Editing   bool        `json:"editing"`
	Version   int         `json:"version"`
	Form      *model.Form `json:"form"`
	UpdatedAt time.Time   `json:"updatedAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func toResponse(d Draft) DraftResponse {
	return DraftResponse{
		DraftID:   d.ID,
		ResumeID:  d.ResumeID,
		Editing:   d.Editing(),
		Version:   d.Version,
		Form:      d.Form,
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}
