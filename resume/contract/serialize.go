package contract

import (
	"strings"

	"cv-builder/resume/model"
)

// LanguageLevelFallback replaces a blank language level on submit.
const LanguageLevelFallback = "—"

// Serialize turns the editable form into the submission payload. Incomplete
// entries are dropped, every retained string is trimmed and empty optional
// values become null. It never fails and never modifies the form.
func Serialize(form *model.Form, editing bool) model.Payload {
	out := model.Payload{
		WorkExperiences: []model.WorkExperience{},
		Educations:      []model.Education{},
		Languages:       []model.Language{},
		Projects:        []model.Project{},
		Skills:          []string{},
		Editing:         editing,
	}
	if form == nil {
		return out
	}

	out.Title = strings.TrimSpace(form.Title)
	out.Description = strings.TrimSpace(form.Description)
	if image := strings.TrimSpace(form.ImageURL); image != "" {
		out.ImageURL = model.Some(image)
	}

	for _, w := range form.WorkExperiences {
		if w == nil || !anyNonBlank(w.Company, w.Position) {
			continue
		}
		out.WorkExperiences = append(out.WorkExperiences, model.WorkExperience{
			Company:     strings.TrimSpace(w.Company),
			Position:    strings.TrimSpace(w.Position),
			Description: model.Bulleted(nonBlank(w.Bullets)...),
			StartDate:   model.NullableString(w.StartDate),
			EndDate:     model.NullableString(w.EndDate),
			IsCurrent:   w.IsCurrent,
		})
	}

	for _, e := range form.Educations {
		if e == nil || !anyNonBlank(e.School, e.Degree) {
			continue
		}
		out.Educations = append(out.Educations, model.Education{
			School:       strings.TrimSpace(e.School),
			Degree:       strings.TrimSpace(e.Degree),
			FieldOfStudy: strings.TrimSpace(e.FieldOfStudy),
			StartDate:    model.NullableString(e.StartDate),
			EndDate:      model.NullableString(e.EndDate),
		})
	}

	for _, l := range form.Languages {
		if l == nil || !anyNonBlank(l.Name) {
			continue
		}
		level := strings.TrimSpace(l.Level)
		if level == "" {
			level = LanguageLevelFallback
		}
		out.Languages = append(out.Languages, model.Language{
			Name:  strings.TrimSpace(l.Name),
			Level: level,
		})
	}

	for _, p := range form.Projects {
		if p == nil || !anyNonBlank(p.Title, p.Description) {
			continue
		}
		out.Projects = append(out.Projects, model.Project{
			Title:       strings.TrimSpace(p.Title),
			Description: strings.TrimSpace(p.Description),
			Link:        model.NullableString(p.Link),
		})
	}

	out.Skills = nonBlank(form.Skills)
	return out
}

func anyNonBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
