package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"cv-builder/resume/model"
)

func newTestService() *Service {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &Service{
		Repo: NewMemoryRepo(),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	}
}

func TestServiceCreateFillsCollections(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), "user-1", model.Payload{Title: "Engineer", Description: "Builds"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	rec := created.Record()
	if rec.ID != created.ID {
		t.Fatalf("expected record id %q, got %q", created.ID, rec.ID)
	}
	if rec.WorkExperiences == nil || rec.Skills == nil || rec.Projects == nil {
		t.Fatalf("expected non-nil collections, got %+v", rec)
	}
}

func TestServiceCreateRejectsBlankTitle(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(context.Background(), "user-1", model.Payload{Title: "  ", Description: "Builds"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceUpdateKeepsUnsetImage(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, "user-1", model.Payload{
		Title:       "Engineer",
		Description: "Builds",
		ImageURL:    model.Some("https://img.test/me.png"),
		Skills:      []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Save(ctx, "user-1", created.ID, model.Payload{
		Title:       "Lead",
		Description: "Leads",
		Skills:      []string{},
		Editing:     true,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected same id, got %q", updated.ID)
	}
	if updated.Content.ImageURL != "https://img.test/me.png" {
		t.Fatalf("expected image kept, got %q", updated.Content.ImageURL)
	}
	if len(updated.Content.Skills) != 0 {
		t.Fatalf("expected skills replaced, got %v", updated.Content.Skills)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance")
	}
}

func TestServiceOwnershipAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, "user-1", model.Payload{Title: "Engineer", Description: "Builds"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, "user-2", created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	items, err := svc.List(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected deleted resume to be hidden, got %d", len(items))
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	first, _ := svc.Create(ctx, "user-1", model.Payload{Title: "First", Description: "d"})
	second, _ := svc.Create(ctx, "user-1", model.Payload{Title: "Second", Description: "d"})
	if _, err := svc.Create(ctx, "user-2", model.Payload{Title: "Other", Description: "d"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.List(ctx, "user-1", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", items)
	}

	page, err := svc.List(ctx, "user-1", 1, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 1 || page[0].ID != first.ID {
		t.Fatalf("expected second page to hold the first resume, got %+v", page)
	}
}
