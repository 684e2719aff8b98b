package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"cv-builder/internal/importer"
	"cv-builder/internal/resumes"
	"cv-builder/resume/editor"
	"cv-builder/resume/model"
	"cv-builder/resume/render"
)

type stubExtractor struct {
	record string
	err    error
}

func (s stubExtractor) Extract(ctx context.Context, text string) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.record), nil
}

func newTestService() (*Service, *resumes.Service) {
	saved := &resumes.Service{Repo: resumes.NewMemoryRepo()}
	return &Service{
		Store:   NewStore(time.Hour),
		Resumes: saved,
	}, saved
}

func TestNewDraftStartsWithPlaceholders(t *testing.T) {
	svc, _ := newTestService()
	d, err := svc.New(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Editing() {
		t.Fatalf("expected a new document, not an edit")
	}
	f := d.Form
	if len(f.WorkExperiences) != 1 || len(f.Educations) != 1 || len(f.Languages) != 1 || len(f.Projects) != 1 || len(f.Skills) != 1 {
		t.Fatalf("expected one placeholder per collection, got %+v", f)
	}
}

func TestNewDraftFromSavedResume(t *testing.T) {
	svc, saved := newTestService()
	ctx := context.Background()
	stored, err := saved.Create(ctx, "u1", model.Payload{
		Title:       "Engineer",
		Description: "Builds",
		WorkExperiences: []model.WorkExperience{{
			Company:     "Acme",
			Description: model.FreeText("one\ntwo"),
		}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	d, err := svc.New(ctx, "u1", stored.ID)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !d.Editing() || d.ResumeID != stored.ID {
		t.Fatalf("expected draft editing %s, got %+v", stored.ID, d)
	}
	if diff := cmp.Diff([]string{"one", "two"}, d.Form.WorkExperiences[0].Bullets); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if len(d.Form.Skills) != 1 {
		t.Fatalf("expected skills placeholder, got %v", d.Form.Skills)
	}

	if _, err := svc.New(ctx, "u2", stored.ID); !errors.Is(err, ErrResumeForbidden) {
		t.Fatalf("expected ErrResumeForbidden for other user, got %v", err)
	}
	if _, err := svc.New(ctx, "u1", "missing"); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestImportUsesHydration(t *testing.T) {
	svc, _ := newTestService()
	d, err := svc.Import(context.Background(), "u1", []byte("```json\n{\"title\":\"Imported\",\"skills\":[\"Go\"],\"languages\":\"oops\"}\n```"))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if d.Form.Title != "Imported" {
		t.Fatalf("expected title Imported, got %q", d.Form.Title)
	}
	if len(d.Form.Languages) != 1 {
		t.Fatalf("expected a language placeholder, got %d", len(d.Form.Languages))
	}

	if _, err := svc.Import(context.Background(), "u1", []byte("no record here")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestImportPDFWithoutExtractor(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.ImportPDF(context.Background(), "u1", []byte("plain text")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-pdf, got %v", err)
	}
}

func TestApplyRejectsWholeBatchOnBadIndex(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	d, _ := svc.New(ctx, "u1", "")

	_, err := svc.Apply(ctx, "u1", d.ID, []editor.Action{
		editor.SetFieldAction{Field: editor.FieldTitle, Value: "Engineer"},
		editor.SetBulletAction{Work: 0, Bullet: 5, Value: "x"},
	})
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, editor.ErrOutOfRange) {
		t.Fatalf("expected out-of-range input error, got %v", err)
	}
	got, _ := svc.Get(ctx, "u1", d.ID)
	if got.Form.Title != "" || got.Version != 0 {
		t.Fatalf("expected draft untouched, got title %q version %d", got.Form.Title, got.Version)
	}

	got, err = svc.Apply(ctx, "u1", d.ID, []editor.Action{
		editor.SetFieldAction{Field: editor.FieldTitle, Value: "Engineer"},
		editor.AddBulletAction{Work: 0},
		editor.SetBulletAction{Work: 0, Bullet: 1, Value: "Shipped"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Version != 3 {
		t.Fatalf("expected version 3, got %d", got.Version)
	}
	if diff := cmp.Diff([]string{"", "Shipped"}, got.Form.WorkExperiences[0].Bullets); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitCreatesThenUpdates(t *testing.T) {
	svc, saved := newTestService()
	ctx := context.Background()
	d, _ := svc.New(ctx, "u1", "")

	if _, err := svc.Submit(ctx, "u1", d.ID); err == nil {
		t.Fatalf("expected validation error for empty draft")
	} else {
		var fieldErrs model.FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
	}
	if _, err := svc.Get(ctx, "u1", d.ID); err != nil {
		t.Fatalf("expected draft kept after failed submit, got %v", err)
	}

	_, err := svc.Apply(ctx, "u1", d.ID, []editor.Action{
		editor.SetFieldAction{Field: editor.FieldTitle, Value: " Engineer "},
		editor.SetFieldAction{Field: editor.FieldDescription, Value: "Builds"},
		editor.SetItemAction{Collection: editor.Skills, Index: 0, Value: "Go"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	created, err := svc.Submit(ctx, "u1", d.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.Content.Title != "Engineer" {
		t.Fatalf("expected trimmed title, got %q", created.Content.Title)
	}
	if len(created.Content.WorkExperiences) != 0 {
		t.Fatalf("expected blank work entry dropped, got %+v", created.Content.WorkExperiences)
	}
	if _, err := svc.Get(ctx, "u1", d.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected draft discarded after submit, got %v", err)
	}

	edit, err := svc.New(ctx, "u1", created.ID)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := svc.Apply(ctx, "u1", edit.ID, []editor.Action{
		editor.SetFieldAction{Field: editor.FieldTitle, Value: "Lead"},
	}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	updated, err := svc.Submit(ctx, "u1", edit.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected update of %s, got %s", created.ID, updated.ID)
	}
	items, _ := saved.List(ctx, "u1", 10, 0)
	if len(items) != 1 || items[0].Content.Title != "Lead" {
		t.Fatalf("expected one updated resume, got %+v", items)
	}
}

func TestPreviewFiltersBlankEntries(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	d, _ := svc.New(ctx, "u1", "")
	p, err := svc.Preview(ctx, "u1", d.ID, render.Contact{Name: "Ada"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Name != "Ada" {
		t.Fatalf("expected contact name, got %q", p.Name)
	}
	if len(p.WorkExperiences) != 0 || len(p.Skills) != 0 {
		t.Fatalf("expected placeholders filtered, got %+v", p)
	}
}

func TestImportPDFPropagatesExtractorErrors(t *testing.T) {
	svc, _ := newTestService()
	svc.Extractor = stubExtractor{err: importer.ErrUnavailable}
	_, err := svc.ImportPDF(context.Background(), "u1", []byte("%PDF-1.4 broken"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, importer.ErrUnavailable) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyRejectsUnknownAttribute(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	d, _ := svc.New(ctx, "u1", "")

	_, err := svc.Apply(ctx, "u1", d.ID, []editor.Action{
		editor.SetItemAction{Collection: editor.Languages, Index: 0, Attr: "fluency", Value: "C1"},
	})
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, editor.ErrUnknownTarget) {
		t.Fatalf("expected unknown-target input error, got %v", err)
	}
	_, err = svc.Apply(ctx, "u1", d.ID, []editor.Action{
		editor.SetItemAction{Collection: editor.WorkExperiences, Index: 0, Attr: "isCurrent", Value: "yes"},
	})
	if !errors.Is(err, editor.ErrBadValue) {
		t.Fatalf("expected ErrBadValue, got %v", err)
	}
	got, _ := svc.Get(ctx, "u1", d.ID)
	if got.Version != 0 {
		t.Fatalf("expected version 0, got %d", got.Version)
	}
}

func TestSubmitAfterResumeDeletedKeepsDraft(t *testing.T) {
	svc, saved := newTestService()
	ctx := context.Background()
	stored, err := saved.Create(ctx, "u1", model.Payload{Title: "Engineer", Description: "Builds"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	d, err := svc.New(ctx, "u1", stored.ID)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := saved.Delete(ctx, "u1", stored.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svc.Submit(ctx, "u1", d.ID)
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("expected resume error to be distinct from a missing draft")
	}
	if _, err := svc.Get(ctx, "u1", d.ID); err != nil {
		t.Fatalf("expected draft kept, got %v", err)
	}
}
