package render

import (
	"strings"

	"cv-builder/resume/contract"
	"cv-builder/resume/format"
	"cv-builder/resume/model"
)

// Contact is profile data that lives outside the resume record.
type Contact struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	GithubURL string `json:"githubUrl"`
	Website   string `json:"website"`
}

func (c Contact) empty() bool {
	return c.Phone == "" && c.Email == "" && c.Location == "" && c.GithubURL == "" && c.Website == ""
}

// Preview is the input every renderer consumes.
type Preview struct {
	Name            string
	Title           string
	Summary         string
	ImageURL        string
	Phone           string
	Email           string
	Location        string
	GithubURL       string
	Website         string
	WorkExperiences []model.WorkExperience
	Projects        []model.Project
	Educations      []model.Education
	Skills          []string
	Languages       []model.Language
}

// FormPreview builds the preview of an editable form. Blank entries are
// filtered exactly as on submit, so the preview shows what would be stored.
func FormPreview(form *model.Form, c Contact) Preview {
	return NewPreview(contract.Serialize(form, false).Apply(model.Resume{}), c)
}

// NewPreview builds the preview of a resume for the given profile.
func NewPreview(r model.Resume, c Contact) Preview {
	return Preview{
		Name:            c.Name,
		Title:           r.Title,
		Summary:         r.Description,
		ImageURL:        r.ImageURL,
		Phone:           c.Phone,
		Email:           c.Email,
		Location:        c.Location,
		GithubURL:       c.GithubURL,
		Website:         c.Website,
		WorkExperiences: r.WorkExperiences,
		Projects:        r.Projects,
		Educations:      r.Educations,
		Skills:          r.Skills,
		Languages:       r.Languages,
	}
}

func (p Preview) contact() Contact {
	return Contact{Phone: p.Phone, Email: p.Email, Location: p.Location, GithubURL: p.GithubURL, Website: p.Website}
}

// skills returns the non-blank skills.
func (p Preview) skills() []string {
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// languages returns the entries that have a name.
func (p Preview) languages() []model.Language {
	out := make([]model.Language, 0, len(p.Languages))
	for _, l := range p.Languages {
		if strings.TrimSpace(l.Name) != "" {
			out = append(out, l)
		}
	}
	return out
}

// LanguageLabel renders "Name (Level)", or just the name when the level is
// blank.
func LanguageLabel(l model.Language) string {
	name := strings.TrimSpace(l.Name)
	if level := strings.TrimSpace(l.Level); level != "" {
		return name + " (" + level + ")"
	}
	return name
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func degreeLabel(e model.Education) string {
	parts := make([]string, 0, 2)
	for _, v := range []string{e.Degree, e.FieldOfStudy} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return orDefault(strings.Join(parts, " in "), "Degree")
}

func workPeriod(w model.WorkExperience) format.Period {
	return format.Period{
		Start:   model.StringValue(w.StartDate),
		End:     model.StringValue(w.EndDate),
		Current: w.IsCurrent,
	}
}

func bulletList(class string, w model.WorkExperience) *Node {
	lines := w.Description.Lines()
	if len(lines) == 0 {
		return nil
	}
	return el("ul", class, nodes(lines, func(line string) *Node {
		return textEl("li", "", line)
	})...)
}

func projectLink(class string, pr model.Project) *Node {
	link := strings.TrimSpace(model.StringValue(pr.Link))
	if link == "" {
		return nil
	}
	return textEl("a", class, link).set("href", link)
}

func photo(class, url string) *Node {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return el("img", class).set("src", url).set("alt", "")
}

// contactLines returns the labelled contact lines in display order.
func contactLines(c Contact, labelled bool) []string {
	entries := []struct{ label, value string }{
		{"Phone", c.Phone},
		{"Email", c.Email},
		{"Location", c.Location},
		{"GitHub", c.GithubURL},
		{"Web", c.Website},
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		if labelled {
			out = append(out, e.label+": "+e.value)
		} else {
			out = append(out, e.value)
		}
	}
	return out
}

const (
	defaultName     = "Your name"
	defaultPosition = "Position"
	defaultProject  = "Project"
)

func projectDescription(class string, pr model.Project) *Node {
	if pr.Description == "" {
		return nil
	}
	return textEl("p", class, pr.Description)
}

// sidebarList is the heading plus list block several layouts share for
// skills and languages.
func sidebarList(blockClass, headingClass, listClass, name, heading string, items []string) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("div", blockClass, name,
		textEl("h3", headingClass, heading),
		el("ul", listClass, nodes(items, func(s string) *Node { return textEl("li", "", s) })...),
	)
}

func languageLabels(languages []model.Language) []string {
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		out = append(out, LanguageLabel(l))
	}
	return out
}
