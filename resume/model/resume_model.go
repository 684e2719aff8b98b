package model

import (
	"net/url"
	"strings"
)

// Resume is the canonical resume record as stored and fetched.
type Resume struct {
	ID              string           `json:"id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Languages       []Language       `json:"languages"`
	Projects        []Project        `json:"projects"`
	Skills          []string         `json:"skills"`
}

// WorkExperience represents a work history entry.
type WorkExperience struct {
	Company     string      `json:"company"`
	Position    string      `json:"position"`
	Description Description `json:"description"`
	StartDate   *string     `json:"startDate"`
	EndDate     *string     `json:"endDate"`
	IsCurrent   bool        `json:"isCurrent"`
}

// Education represents an education entry.
type Education struct {
	School       string  `json:"school"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
}

// Language is a spoken language and a free-form proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Project represents a notable project.
type Project struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        *string `json:"link"`
}

// StringValue dereferences a nullable string, treating nil as empty.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString returns nil for blank input and a pointer to the trimmed
// value otherwise.
func NullableString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isFullURL(value string) bool {
	if value == "" {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
