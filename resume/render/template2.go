package render

import (
	"cv-builder/resume/format"
	"cv-builder/resume/model"
)

// Template2 mirrors Template1: the main column sits on the left and the
// sidebar on the right. Education shows a start and end year.
func Template2(p Preview) *Node {
	header := section("div", "cv-t2-header", "header", textEl("h1", "cv-t2-name", orDefault(p.Name, defaultName)))
	if p.Title != "" {
		header.Children = append(header.Children, textEl("p", "cv-t2-title", p.Title))
	}

	var profile *Node
	if p.Summary != "" {
		profile = section("section", "cv-t2-section", "profile",
			textEl("h2", "cv-t2-section-title", "PROFESSIONAL SUMMARY"),
			textEl("p", "cv-t2-summary", p.Summary),
		)
	}

	main := el("main", "cv-t2-main",
		header,
		profile,
		t2Work(p.WorkExperiences),
		t2Education(p.Educations),
		t2Projects(p.Projects),
	)

	contact := section("div", "cv-t2-sidebar-block", "contact", textEl("h3", "cv-t2-sidebar-heading", "CONTACT"))
	if lines := contactLines(p.contact(), false); len(lines) > 0 {
		contact.Children = append(contact.Children, nodes(lines, func(line string) *Node {
			return textEl("div", "cv-t2-contact", line)
		})...)
	} else {
		contact.Children = append(contact.Children, textEl("span", "cv-t2-muted", format.Placeholder))
	}

	sidebar := el("aside", "cv-t2-sidebar",
		photo("cv-t2-photo", p.ImageURL),
		contact,
		sidebarList("cv-t2-sidebar-block", "cv-t2-sidebar-heading", "cv-t2-sidebar-list", "skills", "SKILLS", p.skills()),
		sidebarList("cv-t2-sidebar-block", "cv-t2-sidebar-heading", "cv-t2-sidebar-list", "languages", "LANGUAGES", languageLabels(p.languages())),
	)

	return el("div", "cv-template2", el("div", "cv-t2-row", main, sidebar))
}

func t2Work(items []model.WorkExperience) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t2-section", "work", titled(
		textEl("h2", "cv-t2-section-title", "EXPERIENCE"),
		nodes(items, func(w model.WorkExperience) *Node {
			return el("div", "cv-t2-entry",
				el("div", "cv-t2-entry-row",
					el("div", "",
						textEl("div", "cv-t2-entry-title", orDefault(w.Position, defaultPosition)),
						textEl("div", "cv-t2-entry-sub", w.Company),
					),
					textEl("span", "cv-t2-muted", format.Range(workPeriod(w), " - ")),
				),
				bulletList("cv-t2-bullets", w),
			)
		}),
	)...)
}

func t2Education(items []model.Education) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t2-section", "education", titled(
		textEl("h2", "cv-t2-section-title", "EDUCATION"),
		nodes(items, func(e model.Education) *Node {
			return el("div", "cv-t2-entry",
				el("div", "cv-t2-entry-row",
					el("div", "",
						textEl("div", "cv-t2-entry-title", degreeLabel(e)),
						textEl("div", "cv-t2-entry-sub", e.School),
					),
					textEl("span", "cv-t2-muted", format.YearRange(model.StringValue(e.StartDate), model.StringValue(e.EndDate), " - ")),
				),
			)
		}),
	)...)
}

func t2Projects(items []model.Project) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t2-section", "projects", titled(
		textEl("h2", "cv-t2-section-title", "PROJECTS"),
		nodes(items, func(pr model.Project) *Node {
			return el("div", "cv-t2-entry",
				el("div", "cv-t2-entry-row",
					textEl("span", "cv-t2-entry-title", orDefault(pr.Title, defaultProject)),
					projectLink("cv-t2-link", pr),
				),
				projectDescription("cv-t2-desc", pr),
			)
		}),
	)...)
}
