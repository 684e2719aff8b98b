package contract

import (
	"encoding/json"
	"errors"

	"cv-builder/resume/model"
)

// Hydrate converts a fetched or imported record into editable form shape.
// Nil or partial input is accepted: every collection comes back non-empty,
// with one default element standing in for anything missing. The input is
// never modified.
func Hydrate(raw *model.Resume) *model.Form {
	if raw == nil {
		return model.NewForm()
	}

	form := &model.Form{
		Title:       raw.Title,
		Description: raw.Description,
		ImageURL:    raw.ImageURL,
	}

	form.WorkExperiences = make([]*model.WorkEntry, 0, len(raw.WorkExperiences))
	for _, w := range raw.WorkExperiences {
		form.WorkExperiences = append(form.WorkExperiences, &model.WorkEntry{
			Company:   w.Company,
			Position:  w.Position,
			Bullets:   hydrateBullets(w.Description),
			StartDate: model.StringValue(w.StartDate),
			EndDate:   model.StringValue(w.EndDate),
			IsCurrent: w.IsCurrent,
		})
	}
	if len(form.WorkExperiences) == 0 {
		form.WorkExperiences = []*model.WorkEntry{model.NewWorkEntry()}
	}

	form.Educations = make([]*model.EducationEntry, 0, len(raw.Educations))
	for _, e := range raw.Educations {
		form.Educations = append(form.Educations, &model.EducationEntry{
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartDate:    model.StringValue(e.StartDate),
			EndDate:      model.StringValue(e.EndDate),
		})
	}
	if len(form.Educations) == 0 {
		form.Educations = []*model.EducationEntry{model.NewEducationEntry()}
	}

	form.Languages = make([]*model.LanguageEntry, 0, len(raw.Languages))
	for _, l := range raw.Languages {
		form.Languages = append(form.Languages, &model.LanguageEntry{Name: l.Name, Level: l.Level})
	}
	if len(form.Languages) == 0 {
		form.Languages = []*model.LanguageEntry{model.NewLanguageEntry()}
	}

	form.Projects = make([]*model.ProjectEntry, 0, len(raw.Projects))
	for _, p := range raw.Projects {
		form.Projects = append(form.Projects, &model.ProjectEntry{
			Title:       p.Title,
			Description: p.Description,
			Link:        model.StringValue(p.Link),
		})
	}
	if len(form.Projects) == 0 {
		form.Projects = []*model.ProjectEntry{model.NewProjectEntry()}
	}

	form.Skills = append([]string{}, raw.Skills...)
	if len(form.Skills) == 0 {
		form.Skills = []string{""}
	}

	return form
}

// HydrateJSON decodes external bytes leniently and hydrates the result.
// Wrongly typed fields are left at their defaults; input that is not JSON at
// all hydrates to a fresh document.
func HydrateJSON(data []byte) *model.Form {
	var raw model.Resume
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Hydrate(nil)
		}
	}
	return Hydrate(&raw)
}

// Bulleted sources keep their slots as-is, including blank ones the user may
// still be filling in. Free text is split into one bullet per line.
func hydrateBullets(d model.Description) []string {
	var bullets []string
	if d.IsFreeText() {
		bullets = d.Lines()
	} else {
		bullets = d.Items()
	}
	if len(bullets) == 0 {
		return []string{""}
	}
	return bullets
}
