package render

import (
	"cv-builder/resume/format"
	"cv-builder/resume/model"
)

// Template4 opens with a header bar holding photo, name, title and contact,
// followed by a two-column body: skills and languages on the left, the rest
// on the right.
func Template4(p Preview) *Node {
	info := el("div", "cv-t4-header-info", textEl("h1", "cv-t4-name", orDefault(p.Name, defaultName)))
	if p.Title != "" {
		info.Children = append(info.Children, textEl("p", "cv-t4-title", p.Title))
	}
	if lines := contactLines(p.contact(), true); len(lines) > 0 {
		info.Children = append(info.Children, section("div", "cv-t4-contact", "contact", nodes(lines, func(line string) *Node {
			return textEl("div", "", line)
		})...))
	}

	header := section("header", "cv-t4-header", "header",
		el("div", "cv-t4-header-photo", photo("", p.ImageURL)),
		info,
	)

	var profile *Node
	if p.Summary != "" {
		profile = section("section", "cv-t4-block", "profile",
			t4Heading("PROFILE"),
			textEl("p", "cv-t4-summary", p.Summary),
		)
	}

	body := el("div", "cv-t4-body",
		el("aside", "cv-t4-sidebar",
			t4SidebarBlock("skills", "SKILLS", p.skills()),
			t4SidebarBlock("languages", "LANGUAGES", languageLabels(p.languages())),
		),
		el("main", "cv-t4-main",
			profile,
			t4Work(p.WorkExperiences),
			t4Education(p.Educations),
			t4Projects(p.Projects),
		),
	)

	return el("div", "cv-template4", header, body)
}

func t4Heading(title string) *Node {
	return textEl("h2", "cv-t4-section-title", title)
}

func t4SidebarBlock(name, title string, items []string) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("div", "cv-t4-sidebar-block", name, titled(
		t4Heading(title),
		nodes(items, func(s string) *Node { return textEl("div", "cv-t4-sidebar-item", s) }),
	)...)
}

func t4Work(items []model.WorkExperience) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t4-block", "work", titled(
		t4Heading("WORK EXPERIENCE"),
		nodes(items, func(w model.WorkExperience) *Node {
			return el("div", "cv-t4-entry",
				el("div", "cv-t4-entry-row",
					textEl("span", "cv-t4-entry-title", orDefault(w.Position, defaultPosition)),
					textEl("span", "cv-t4-dates", format.Range(workPeriod(w), " - ")),
				),
				textEl("p", "cv-t4-entry-sub", w.Company),
				bulletList("cv-t4-bullets", w),
			)
		}),
	)...)
}

func t4Education(items []model.Education) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t4-block", "education", titled(
		t4Heading("EDUCATION"),
		nodes(items, func(e model.Education) *Node {
			return el("div", "cv-t4-edu-row",
				textEl("div", "cv-t4-edu-degree", degreeLabel(e)),
				textEl("div", "cv-t4-edu-school", e.School+" / "+format.Year(model.StringValue(e.EndDate))),
			)
		}),
	)...)
}

func t4Projects(items []model.Project) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t4-block", "projects", titled(
		t4Heading("PROJECTS"),
		nodes(items, func(pr model.Project) *Node {
			return el("div", "cv-t4-proj",
				textEl("div", "cv-t4-entry-title", orDefault(pr.Title, defaultProject)),
				projectDescription("cv-t4-proj-desc", pr),
			)
		}),
	)...)
}
