package drafts

import (
	"time"

	"cv-builder/resume/model"
)

// Draft is an open editing session. Form is replaced, never mutated, on
// every accepted edit.
type Draft struct {
	ID       string
	UserID   string
	ResumeID string
	Form     *model.Form
	// Version counts applied actions.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Editing reports whether submitting the draft updates a saved resume.
func (d Draft) Editing() bool {
	return d.ResumeID != ""
}
