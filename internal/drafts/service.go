package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cv-builder/internal/importer"
	"cv-builder/internal/resumes"
	"cv-builder/internal/shared/metrics"
	"cv-builder/internal/shared/telemetry"
	"cv-builder/resume/contract"
	"cv-builder/resume/editor"
	"cv-builder/resume/model"
	"cv-builder/resume/render"
)

// Resumes is the saved-resume collaborator drafts read from and submit to.
type Resumes interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.StoredResume, error)
	Save(ctx context.Context, userID, resumeID string, p model.Payload) (resumes.StoredResume, error)
}

// Service contains business logic for drafts.
type Service struct {
	Store     *Store
	Resumes   Resumes
	Extractor importer.Extractor
}

// New opens a draft. With a resume id the draft edits that resume;
// otherwise it starts from an empty document.
func (s *Service) New(ctx context.Context, userID, resumeID string) (Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return Draft{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	resumeID = strings.TrimSpace(resumeID)

	var form *model.Form
	if resumeID == "" {
		form = contract.Hydrate(nil)
	} else {
		stored, err := s.Resumes.Get(ctx, userID, resumeID)
		if err != nil {
			return Draft{}, resumeError(err)
		}
		rec := stored.Record()
		form = contract.Hydrate(&rec)
	}
	return s.open(ctx, userID, resumeID, form, "new")
}

// Import opens an unsaved draft from an extracted record. The record takes
// the same hydration path as a fetched one.
func (s *Service) Import(ctx context.Context, userID string, raw []byte) (Draft, error) {
	if strings.TrimSpace(userID) == "" {
		return Draft{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	record, err := importer.ExtractRecord(string(raw))
	if err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.open(ctx, userID, "", contract.HydrateJSON(record), "import")
}

// ImportPDF extracts the text of a PDF, asks the extractor for a record and
// opens a draft from it.
func (s *Service) ImportPDF(ctx context.Context, userID string, data []byte) (Draft, error) {
	text, err := importer.PDFText(ctx, data)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidInput) {
			return Draft{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Draft{}, err
	}
	extractor := s.Extractor
	if extractor == nil {
		extractor = importer.Unavailable{}
	}
	record, err := extractor.Extract(ctx, text)
	if err != nil {
		return Draft{}, fmt.Errorf("extract record: %w", err)
	}
	return s.open(ctx, userID, "", contract.HydrateJSON(record), "import_pdf")
}

func (s *Service) open(ctx context.Context, userID, resumeID string, form *model.Form, source string) (Draft, error) {
	d, err := s.Store.Create(ctx, Draft{
		ID:       uuid.NewString(),
		UserID:   userID,
		ResumeID: resumeID,
		Form:     form,
	})
	if err != nil {
		return Draft{}, err
	}
	telemetry.Info("draft.opened", map[string]any{
		"draft_id":  d.ID,
		"user_id":   userID,
		"resume_id": resumeID,
		"source":    source,
	})
	return d, nil
}

// Get returns the current state of a draft.
func (s *Service) Get(ctx context.Context, userID, draftID string) (Draft, error) {
	return s.Store.Get(ctx, userID, draftID)
}

// Apply applies actions in order against the latest state of the draft.
// The batch is rejected as a whole when any action does not address an
// existing element.
func (s *Service) Apply(ctx context.Context, userID, draftID string, actions []editor.Action) (Draft, error) {
	if len(actions) == 0 {
		return Draft{}, fmt.Errorf("%w: no actions", ErrInvalidInput)
	}
	d, err := s.Store.Update(ctx, userID, draftID, func(d Draft) (Draft, error) {
		form := d.Form
		for i, a := range actions {
			if err := editor.Check(form, a); err != nil {
				return Draft{}, fmt.Errorf("%w: action %d: %w", ErrInvalidInput, i, err)
			}
			form = a.Apply(form)
		}
		d.Form = form
		d.Version += len(actions)
		return d, nil
	})
	if err != nil {
		return Draft{}, err
	}
	metrics.AddDraftActions(len(actions))
	return d, nil
}

// Preview builds the preview of the draft as it would be submitted.
func (s *Service) Preview(ctx context.Context, userID, draftID string, c render.Contact) (render.Preview, error) {
	d, err := s.Store.Get(ctx, userID, draftID)
	if err != nil {
		return render.Preview{}, err
	}
	return render.FormPreview(d.Form, c), nil
}

// Submit validates the draft, saves it and discards it. Validation failures
// are returned as model.FieldErrors and keep the draft open.
func (s *Service) Submit(ctx context.Context, userID, draftID string) (resumes.StoredResume, error) {
	var saved resumes.StoredResume
	err := s.Store.Consume(ctx, userID, draftID, func(d Draft) error {
		if err := d.Form.Validate(); err != nil {
			return err
		}
		stored, err := s.Resumes.Save(ctx, userID, d.ResumeID, contract.Serialize(d.Form, d.Editing()))
		if err != nil {
			return resumeError(err)
		}
		saved = stored
		return nil
	})
	if err != nil {
		return resumes.StoredResume{}, err
	}
	telemetry.Info("draft.submitted", map[string]any{
		"draft_id":  draftID,
		"user_id":   userID,
		"resume_id": saved.ID,
	})
	return saved, nil
}

// Discard drops a draft without saving.
func (s *Service) Discard(ctx context.Context, userID, draftID string) error {
	return s.Store.Delete(ctx, userID, draftID)
}

func resumeError(err error) error {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrResumeNotFound, err)
	case errors.Is(err, resumes.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrResumeForbidden, err)
	case errors.Is(err, resumes.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return err
}
