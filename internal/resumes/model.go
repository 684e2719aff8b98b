package resumes

import (
	"time"

	"cv-builder/resume/model"
)

// StoredResume is a saved resume owned by one user. Content never carries
// its own id; Record fills it in.
type StoredResume struct {
	ID        string
	UserID    string
	Content   model.Resume
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Record returns the stored content with its id set, as callers fetch it.
func (s StoredResume) Record() model.Resume {
	r := withCollections(s.Content)
	r.ID = s.ID
	return r
}

// withCollections replaces nil collections with empty ones so a record
// always encodes every list.
func withCollections(r model.Resume) model.Resume {
	if r.WorkExperiences == nil {
		r.WorkExperiences = []model.WorkExperience{}
	}
	if r.Educations == nil {
		r.Educations = []model.Education{}
	}
	if r.Languages == nil {
		r.Languages = []model.Language{}
	}
	if r.Projects == nil {
		r.Projects = []model.Project{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return r
}
