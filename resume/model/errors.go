package model

import (
	"strconv"
	"strings"
)

// FieldError describes one failing field. Field uses dotted paths with
// indices, e.g. "workExperiences.2.startDate".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is returned by Form.Validate.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "invalid resume: " + strings.Join(parts, "; ")
}

func fieldPath(collection string, index int, attr string) string {
	return collection + "." + strconv.Itoa(index) + "." + attr
}
