// Package editor applies edits to a resume form. Every operation returns a
// new *model.Form and leaves its input untouched: the root and every slice or
// entry on the path to the changed value are copied, everything else is
// shared with the previous state.
package editor

import (
	"fmt"
	"slices"

	"cv-builder/resume/model"
)

// Field names a scalar field of the form.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldImageURL    Field = "imageUrl"
)

// Collection names one of the five repeated sections.
type Collection string

const (
	WorkExperiences Collection = "workExperiences"
	Educations      Collection = "educations"
	Languages       Collection = "languages"
	Projects        Collection = "projects"
	Skills          Collection = "skills"
)

// Collections lists every collection in form order.
var Collections = []Collection{WorkExperiences, Educations, Languages, Projects, Skills}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

var stringAttrs = map[Collection][]string{
	WorkExperiences: {"company", "position", "startDate", "endDate"},
	Educations:      {"school", "degree", "fieldOfStudy", "startDate", "endDate"},
	Languages:       {"name", "level"},
	Projects:        {"title", "description", "link"},
}

// ValidAttr reports whether SetItem would accept attr and value for c.
// Skills ignore attr and take a string; isCurrent on work entries takes a
// bool; every other attribute takes a string.
func ValidAttr(c Collection, attr string, value any) error {
	if !c.Valid() {
		return fmt.Errorf("%w: collection %q", ErrUnknownTarget, c)
	}
	want := "string"
	switch {
	case c == Skills:
	case c == WorkExperiences && attr == "isCurrent":
		want = "bool"
	case !slices.Contains(stringAttrs[c], attr):
		return fmt.Errorf("%w: %s.%s", ErrUnknownTarget, c, attr)
	}
	var ok bool
	if want == "bool" {
		_, ok = value.(bool)
	} else {
		_, ok = value.(string)
	}
	if !ok {
		return fmt.Errorf("%w: %s.%s expects a %s, got %T", ErrBadValue, c, attr, want, value)
	}
	return nil
}

// SetField replaces a scalar field. Unknown fields leave the form unchanged.
func SetField(f *model.Form, field Field, value string) *model.Form {
	if f == nil {
		return f
	}
	switch field {
	case FieldTitle:
		next := *f
		next.Title = value
		return &next
	case FieldDescription:
		next := *f
		next.Description = value
		return &next
	case FieldImageURL:
		next := *f
		next.ImageURL = value
		return &next
	}
	return f
}

// SetItem replaces one attribute of one element. String attributes take a
// string and isCurrent takes a bool; skills ignore attr. An out-of-range
// index, an unknown attribute or a value of the wrong type leaves the form
// unchanged.
func SetItem(f *model.Form, c Collection, index int, attr string, value any) *model.Form {
	if !InBounds(f, c, index) {
		return f
	}
	next := *f
	switch c {
	case WorkExperiences:
		entry := *f.WorkExperiences[index]
		if !setWorkAttr(&entry, attr, value) {
			return f
		}
		next.WorkExperiences = replaceAt(f.WorkExperiences, index, &entry)
	case Educations:
		entry := *f.Educations[index]
		if !setEducationAttr(&entry, attr, value) {
			return f
		}
		next.Educations = replaceAt(f.Educations, index, &entry)
	case Languages:
		entry := *f.Languages[index]
		if !setLanguageAttr(&entry, attr, value) {
			return f
		}
		next.Languages = replaceAt(f.Languages, index, &entry)
	case Projects:
		entry := *f.Projects[index]
		if !setProjectAttr(&entry, attr, value) {
			return f
		}
		next.Projects = replaceAt(f.Projects, index, &entry)
	case Skills:
		s, ok := value.(string)
		if !ok {
			return f
		}
		next.Skills = replaceAt(f.Skills, index, s)
	default:
		return f
	}
	return &next
}

// AddItem appends the collection's default element.
func AddItem(f *model.Form, c Collection) *model.Form {
	if f == nil {
		return f
	}
	next := *f
	switch c {
	case WorkExperiences:
		next.WorkExperiences = appendTo(f.WorkExperiences, model.NewWorkEntry())
	case Educations:
		next.Educations = appendTo(f.Educations, model.NewEducationEntry())
	case Languages:
		next.Languages = appendTo(f.Languages, model.NewLanguageEntry())
	case Projects:
		next.Projects = appendTo(f.Projects, model.NewProjectEntry())
	case Skills:
		next.Skills = appendTo(f.Skills, "")
	default:
		return f
	}
	return &next
}

// RemoveItem removes one element. Collections may become empty; nothing is
// reseeded.
func RemoveItem(f *model.Form, c Collection, index int) *model.Form {
	if !InBounds(f, c, index) {
		return f
	}
	next := *f
	switch c {
	case WorkExperiences:
		next.WorkExperiences = removeAt(f.WorkExperiences, index)
	case Educations:
		next.Educations = removeAt(f.Educations, index)
	case Languages:
		next.Languages = removeAt(f.Languages, index)
	case Projects:
		next.Projects = removeAt(f.Projects, index)
	case Skills:
		next.Skills = removeAt(f.Skills, index)
	}
	return &next
}

// SetBullet replaces one bullet of one work entry.
func SetBullet(f *model.Form, work, bullet int, value string) *model.Form {
	if !BulletInBounds(f, work, bullet) {
		return f
	}
	entry := *f.WorkExperiences[work]
	entry.Bullets = replaceAt(entry.Bullets, bullet, value)
	next := *f
	next.WorkExperiences = replaceAt(f.WorkExperiences, work, &entry)
	return &next
}

// AddBullet appends an empty bullet slot to one work entry.
func AddBullet(f *model.Form, work int) *model.Form {
	if !InBounds(f, WorkExperiences, work) {
		return f
	}
	entry := *f.WorkExperiences[work]
	entry.Bullets = appendTo(entry.Bullets, "")
	next := *f
	next.WorkExperiences = replaceAt(f.WorkExperiences, work, &entry)
	return &next
}

// Len returns the number of elements in a collection.
func Len(f *model.Form, c Collection) int {
	if f == nil {
		return 0
	}
	switch c {
	case WorkExperiences:
		return len(f.WorkExperiences)
	case Educations:
		return len(f.Educations)
	case Languages:
		return len(f.Languages)
	case Projects:
		return len(f.Projects)
	case Skills:
		return len(f.Skills)
	}
	return 0
}

// InBounds reports whether index addresses an existing element.
func InBounds(f *model.Form, c Collection, index int) bool {
	return index >= 0 && index < Len(f, c)
}

// BulletInBounds reports whether bullet addresses an existing bullet of an
// existing work entry.
func BulletInBounds(f *model.Form, work, bullet int) bool {
	if !InBounds(f, WorkExperiences, work) || f.WorkExperiences[work] == nil {
		return false
	}
	return bullet >= 0 && bullet < len(f.WorkExperiences[work].Bullets)
}

func replaceAt[T any](items []T, index int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[index] = v
	return out
}

func appendTo[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}

func removeAt[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

func setWorkAttr(e *model.WorkEntry, attr string, value any) bool {
	if attr == "isCurrent" {
		b, ok := value.(bool)
		if ok {
			e.IsCurrent = b
		}
		return ok
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch attr {
	case "company":
		e.Company = s
	case "position":
		e.Position = s
	case "startDate":
		e.StartDate = s
	case "endDate":
		e.EndDate = s
	default:
		return false
	}
	return true
}

func setEducationAttr(e *model.EducationEntry, attr string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch attr {
	case "school":
		e.School = s
	case "degree":
		e.Degree = s
	case "fieldOfStudy":
		e.FieldOfStudy = s
	case "startDate":
		e.StartDate = s
	case "endDate":
		e.EndDate = s
	default:
		return false
	}
	return true
}

func setLanguageAttr(e *model.LanguageEntry, attr string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch attr {
	case "name":
		e.Name = s
	case "level":
		e.Level = s
	default:
		return false
	}
	return true
}

func setProjectAttr(e *model.ProjectEntry, attr string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch attr {
	case "title":
		e.Title = s
	case "description":
		e.Description = s
	case "link":
		e.Link = s
	default:
		return false
	}
	return true
}
