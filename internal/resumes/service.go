package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cv-builder/internal/shared/metrics"
	"cv-builder/internal/shared/telemetry"
	"cv-builder/resume/model"
)

// Service contains business logic for saved resumes.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create stores a new resume built from the payload.
func (s *Service) Create(ctx context.Context, userID string, p model.Payload) (StoredResume, error) {
	if strings.TrimSpace(userID) == "" {
		return StoredResume{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if err := checkPayload(p); err != nil {
		return StoredResume{}, err
	}

	now := s.now()
	content := withCollections(p.Apply(model.Resume{}))
	content.ID = ""
	resume := StoredResume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return StoredResume{}, fmt.Errorf("create resume: %w", err)
	}

	metrics.IncResumeCreated()
	telemetry.Info("resume.created", map[string]any{
		"resume_id": resume.ID,
		"user_id":   userID,
	})
	return resume, nil
}

// Get returns one live resume owned by userID.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (StoredResume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return StoredResume{}, fmt.Errorf("%w: resume id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's live resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]StoredResume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Update merges the payload over the stored content. An unset image keeps
// the stored one.
func (s *Service) Update(ctx context.Context, userID, resumeID string, p model.Payload) (StoredResume, error) {
	if err := checkPayload(p); err != nil {
		return StoredResume{}, err
	}
	existing, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return StoredResume{}, err
	}

	existing.Content = withCollections(p.Apply(existing.Content))
	existing.Content.ID = ""
	existing.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return StoredResume{}, fmt.Errorf("update resume: %w", err)
	}

	metrics.IncResumeUpdated()
	telemetry.Info("resume.updated", map[string]any{
		"resume_id": existing.ID,
		"user_id":   userID,
	})
	return existing, nil
}

// Save creates a resume, or updates resumeID when the payload is editing.
func (s *Service) Save(ctx context.Context, userID, resumeID string, p model.Payload) (StoredResume, error) {
	if p.Editing {
		return s.Update(ctx, userID, resumeID, p)
	}
	return s.Create(ctx, userID, p)
}

// Delete soft-deletes a resume.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if strings.TrimSpace(resumeID) == "" {
		return fmt.Errorf("%w: resume id required", ErrInvalidInput)
	}
	if err := s.Repo.SoftDelete(ctx, userID, resumeID, s.now()); err != nil {
		return err
	}
	telemetry.Info("resume.deleted", map[string]any{
		"resume_id": resumeID,
		"user_id":   userID,
	})
	return nil
}

func checkPayload(p model.Payload) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return nil
}
