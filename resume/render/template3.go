package render

import (
	"strings"

	"cv-builder/resume/format"
	"cv-builder/resume/model"
)

const inlineSeparator = "  •  "

// Template3 is a single column: centered uppercase header, a contact bar,
// then every section in turn. Skills and languages are single inline lines.
func Template3(p Preview) *Node {
	header := section("header", "cv-t3-header", "header",
		textEl("h1", "cv-t3-name", strings.ToUpper(orDefault(p.Name, defaultName))),
	)
	if p.Title != "" {
		header.Children = append(header.Children, textEl("p", "cv-t3-title", p.Title))
	}

	var contact *Node
	if lines := contactLines(p.contact(), true); len(lines) > 0 {
		contact = section("div", "cv-t3-contact-bar", "contact", nodes(lines, func(line string) *Node {
			return textEl("span", "", line)
		})...)
	}

	return el("div", "cv-template3",
		el("div", "cv-t3-column",
			header,
			contact,
			t3Paragraph("profile", "Profile", "cv-t3-summary", p.Summary),
			t3Paragraph("skills", "Skills", "cv-t3-skills", strings.Join(p.skills(), inlineSeparator)),
			t3Work(p.WorkExperiences),
			t3Education(p.Educations),
			t3Projects(p.Projects),
			t3Paragraph("languages", "Languages", "cv-t3-languages", strings.Join(languageLabels(p.languages()), inlineSeparator)),
		),
	)
}

func t3Heading(title string) *Node {
	return textEl("h2", "cv-t3-section-header", title)
}

func t3Paragraph(name, title, class, body string) *Node {
	if body == "" {
		return nil
	}
	return section("section", "cv-t3-section", name, t3Heading(title), textEl("p", class, body))
}

func t3Work(items []model.WorkExperience) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t3-section", "work", titled(
		t3Heading("Work experience"),
		nodes(items, func(w model.WorkExperience) *Node {
			return el("div", "cv-t3-entry",
				el("div", "cv-t3-entry-row",
					textEl("span", "cv-t3-entry-title", orDefault(w.Position, defaultPosition)),
					textEl("span", "cv-t3-dates", format.Range(workPeriod(w), " - ")),
				),
				textEl("p", "cv-t3-entry-sub", w.Company),
				bulletList("cv-t3-bullets", w),
			)
		}),
	)...)
}

func t3Education(items []model.Education) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t3-section", "education", titled(
		t3Heading("Education"),
		nodes(items, func(e model.Education) *Node {
			return el("div", "cv-t3-edu-row",
				el("div", "",
					textEl("div", "cv-t3-entry-title", degreeLabel(e)),
					textEl("div", "cv-t3-entry-sub", e.School),
				),
				textEl("span", "cv-t3-dates", format.Year(model.StringValue(e.EndDate))),
			)
		}),
	)...)
}

func t3Projects(items []model.Project) *Node {
	if len(items) == 0 {
		return nil
	}
	return section("section", "cv-t3-section", "projects", titled(
		t3Heading("Projects"),
		nodes(items, func(pr model.Project) *Node {
			return el("div", "cv-t3-entry",
				el("div", "cv-t3-entry-row",
					textEl("span", "cv-t3-entry-title", orDefault(pr.Title, defaultProject)),
					projectLink("cv-t3-link", pr),
				),
				projectDescription("cv-t3-desc", pr),
			)
		}),
	)...)
}
