package model

import (
	"strings"

	"cv-builder/resume/format"
)

// Form is the editable shape of a resume. Collections hold pointers so an
// edit can replace one element and share every other element with the
// previous state.
type Form struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	ImageURL        string            `json:"imageUrl"`
	WorkExperiences []*WorkEntry      `json:"workExperiences"`
	Educations      []*EducationEntry `json:"educations"`
	Languages       []*LanguageEntry  `json:"languages"`
	Projects        []*ProjectEntry   `json:"projects"`
	Skills          []string          `json:"skills"`
}

// WorkEntry is a work experience while editing. Bullets always has at least
// one slot on a freshly created entry.
type WorkEntry struct {
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	Bullets   []string `json:"description"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	IsCurrent bool     `json:"isCurrent"`
}

type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type LanguageEntry struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func NewWorkEntry() *WorkEntry {
	return &WorkEntry{Bullets: []string{""}}
}

func NewEducationEntry() *EducationEntry {
	return &EducationEntry{}
}

func NewLanguageEntry() *LanguageEntry {
	return &LanguageEntry{}
}

func NewProjectEntry() *ProjectEntry {
	return &ProjectEntry{}
}

// NewForm returns a fresh document with one placeholder element per
// collection.
func NewForm() *Form {
	return &Form{
		WorkExperiences: []*WorkEntry{NewWorkEntry()},
		Educations:      []*EducationEntry{NewEducationEntry()},
		Languages:       []*LanguageEntry{NewLanguageEntry()},
		Projects:        []*ProjectEntry{NewProjectEntry()},
		Skills:          []string{""},
	}
}

// Resume converts the form back into a record without dropping anything,
// so a form can be round-tripped through hydration.
func (f *Form) Resume() Resume {
	if f == nil {
		return Resume{}
	}
	out := Resume{
		Title:       f.Title,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Skills:      append([]string{}, f.Skills...),
	}
	out.WorkExperiences = make([]WorkExperience, 0, len(f.WorkExperiences))
	for _, w := range f.WorkExperiences {
		if w == nil {
			continue
		}
		out.WorkExperiences = append(out.WorkExperiences, WorkExperience{
			Company:     w.Company,
			Position:    w.Position,
			Description: Bulleted(w.Bullets...),
			StartDate:   NullableString(w.StartDate),
			EndDate:     NullableString(w.EndDate),
			IsCurrent:   w.IsCurrent,
		})
	}
	out.Educations = make([]Education, 0, len(f.Educations))
	for _, e := range f.Educations {
		if e == nil {
			continue
		}
		out.Educations = append(out.Educations, Education{
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartDate:    NullableString(e.StartDate),
			EndDate:      NullableString(e.EndDate),
		})
	}
	out.Languages = make([]Language, 0, len(f.Languages))
	for _, l := range f.Languages {
		if l == nil {
			continue
		}
		out.Languages = append(out.Languages, Language{Name: l.Name, Level: l.Level})
	}
	out.Projects = make([]Project, 0, len(f.Projects))
	for _, p := range f.Projects {
		if p == nil {
			continue
		}
		out.Projects = append(out.Projects, Project{
			Title:       p.Title,
			Description: p.Description,
			Link:        NullableString(p.Link),
		})
	}
	return out
}

// Validate runs the editing-surface checks that must pass before submit.
// It returns FieldErrors listing every failing field, or nil.
func (f *Form) Validate() error {
	if f == nil {
		return FieldErrors{{Field: "title", Message: "is required"}}
	}
	var errs FieldErrors
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "is required"})
	}
	if strings.TrimSpace(f.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "is required"})
	}
	if image := strings.TrimSpace(f.ImageURL); image != "" && !isFullURL(image) {
		errs = append(errs, FieldError{Field: "imageUrl", Message: "must be an absolute http(s) URL"})
	}
	for i, w := range f.WorkExperiences {
		if w == nil {
			continue
		}
		errs = appendDateError(errs, fieldPath("workExperiences", i, "startDate"), w.StartDate)
		if !w.IsCurrent {
			errs = appendDateError(errs, fieldPath("workExperiences", i, "endDate"), w.EndDate)
		}
	}
	for i, e := range f.Educations {
		if e == nil {
			continue
		}
		errs = appendDateError(errs, fieldPath("educations", i, "startDate"), e.StartDate)
		errs = appendDateError(errs, fieldPath("educations", i, "endDate"), e.EndDate)
	}
	for i, p := range f.Projects {
		if p == nil {
			continue
		}
		if link := strings.TrimSpace(p.Link); link != "" && !isFullURL(link) {
			errs = append(errs, FieldError{Field: fieldPath("projects", i, "link"), Message: "must be an absolute http(s) URL"})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func appendDateError(errs FieldErrors, field, value string) FieldErrors {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs
	}
	if _, ok := format.Parse(value); ok {
		return errs
	}
	return append(errs, FieldError{Field: field, Message: "must be an ISO 8601 date"})
}
