package importer

import "errors"

var (
	// ErrInvalidInput indicates the uploaded document or extracted text is unusable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates no extraction service is configured.
	ErrUnavailable = errors.New("extraction service unavailable")

	// ErrNoRecord indicates the extractor response holds no JSON object.
	ErrNoRecord = errors.New("no json object found")
)
