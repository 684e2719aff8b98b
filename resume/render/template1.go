package render

import (
	"cv-builder/resume/format"
	"cv-builder/resume/model"
)

// Template1 puts photo, contact, skills and languages in a left sidebar and
// the profile, work, projects and education in the main column.
func Template1(p Preview) *Node {
	contact := section("div", "cv-t1-sidebar-block", "contact", textEl("h3", "cv-t1-sidebar-heading", "CONTACT"))
	if lines := contactLines(p.contact(), true); len(lines) > 0 {
		contact.Children = append(contact.Children, nodes(lines, func(line string) *Node {
			return textEl("div", "cv-t1-contact", line)
		})...)
	} else {
		contact.Children = append(contact.Children, textEl("span", "cv-t1-muted", format.Placeholder))
	}

	sidebar := el("aside", "cv-t1-sidebar",
		photo("cv-t1-photo", p.ImageURL),
		contact,
		sidebarList("cv-t1-sidebar-block", "cv-t1-sidebar-heading", "cv-t1-list", "skills", "SKILLS", p.skills()),
		sidebarList("cv-t1-sidebar-block", "cv-t1-sidebar-heading", "cv-t1-list", "languages", "LANGUAGES", languageLabels(p.languages())),
	)

	main := el("main", "cv-t1-main",
		section("div", "cv-t1-header", "header",
			textEl("h1", "cv-t1-name", orDefault(p.Name, defaultName)),
			textEl("p", "cv-t1-title", orDefault(p.Title, "Professional title")),
		),
		t1Profile(p),
		t1Work(p.WorkExperiences),
		t1Projects(p.Projects),
		t1Education(p.Educations),
	)

	return el("div", "cv-template1", el("div", "cv-t1-row", sidebar, main))
}

func t1Profile(p Preview) *Node {
	if p.Summary == "" {
		return nil
	}
	return section("section", "cv-t1-section", "profile",
		textEl("h2", "cv-t1-section-title", "PROFILE"),
		textEl("p", "cv-t1-summary", p.Summary),
	)
}

func t1Work(items []model.WorkExperience) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t1-section", "work", titled(
		textEl("h2", "cv-t1-section-title", "WORK EXPERIENCE"),
		nodes(items, func(w model.WorkExperience) *Node {
			return el("div", "cv-t1-entry",
				el("div", "cv-t1-entry-row",
					textEl("span", "cv-t1-entry-title", orDefault(w.Position, defaultPosition)),
					textEl("span", "cv-t1-muted", format.Range(workPeriod(w), " – ")),
				),
				textEl("div", "cv-t1-entry-sub", w.Company),
				bulletList("cv-t1-bullets", w),
			)
		}),
	)...)
}

func t1Projects(items []model.Project) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t1-section", "projects", titled(
		textEl("h2", "cv-t1-section-title", "PROJECTS"),
		nodes(items, func(pr model.Project) *Node {
			return el("div", "cv-t1-entry",
				el("div", "cv-t1-entry-row",
					textEl("span", "cv-t1-entry-title", orDefault(pr.Title, defaultProject)),
					projectLink("cv-t1-link", pr),
				),
				projectDescription("cv-t1-desc", pr),
			)
		}),
	)...)
}

func t1Education(items []model.Education) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t1-section", "education", titled(
		textEl("h2", "cv-t1-section-title", "EDUCATION"),
		nodes(items, func(e model.Education) *Node {
			return el("div", "cv-t1-entry",
				el("div", "cv-t1-entry-row",
					textEl("span", "cv-t1-entry-title", degreeLabel(e)),
					textEl("span", "cv-t1-muted", format.Year(model.StringValue(e.EndDate))),
				),
				textEl("div", "cv-t1-entry-sub", e.School),
			)
		}),
	)...)
}
