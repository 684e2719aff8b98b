package model

// Payload is the submission output produced from a Form. Collections are
// always non-nil after serialization. ImageURL is omitted from the wire when
// unset.
type Payload struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ImageURL        Optional[string] `json:"imageUrl,omitzero"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Languages       []Language       `json:"languages"`
	Projects        []Project        `json:"projects"`
	Skills          []string         `json:"skills"`

	// Editing is true when the payload updates an existing resume.
	Editing bool `json:"-"`
}

// Apply merges the payload over base. Scalars and collections replace the
// base values; an unset ImageURL keeps the stored one. A nil collection,
// which only occurs for hand-built payloads, also keeps the base.
func (p Payload) Apply(base Resume) Resume {
	out := base
	out.Title = p.Title
	out.Description = p.Description
	if v, ok := p.ImageURL.Get(); ok {
		out.ImageURL = v
	}
	if p.WorkExperiences != nil {
		out.WorkExperiences = p.WorkExperiences
	}
	if p.Educations != nil {
		out.Educations = p.Educations
	}
	if p.Languages != nil {
		out.Languages = p.Languages
	}
	if p.Projects != nil {
		out.Projects = p.Projects
	}
	if p.Skills != nil {
		out.Skills = p.Skills
	}
	return out
}
