package drafts

import "errors"

var (
	// ErrNotFound indicates the draft does not exist, expired or was submitted.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the draft belongs to another user.
	ErrForbidden = errors.New("forbidden")

	// ErrResumeNotFound indicates the saved resume a draft reads from or
	// submits to is missing or was deleted.
	ErrResumeNotFound = errors.New("resume not found")

	// ErrResumeForbidden indicates the saved resume belongs to another user.
	ErrResumeForbidden = errors.New("resume forbidden")
)
