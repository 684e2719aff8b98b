package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]StoredResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]StoredResume)}
}

// Create stores the resume.
func (r *MemoryRepo) Create(ctx context.Context, resume StoredResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	return nil
}

// GetByID returns a live resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return StoredResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(userID, resumeID)
}

func (r *MemoryRepo) lookup(userID, resumeID string) (StoredResume, error) {
	resume, ok := r.byID[resumeID]
	if !ok || resume.DeletedAt != nil {
		return StoredResume{}, ErrNotFound
	}
	if resume.UserID != userID {
		return StoredResume{}, ErrForbidden
	}
	return resume, nil
}

// ListByUser returns live resumes for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	out := make([]StoredResume, 0)
	for _, resume := range r.byID {
		if resume.UserID == userID && resume.DeletedAt == nil {
			out = append(out, resume)
		}
	}
	r.mu.RUnlock()

	if offset >= len(out) {
		return []StoredResume{}, nil
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// Update replaces the content of a live resume.
func (r *MemoryRepo) Update(ctx context.Context, resume StoredResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.lookup(resume.UserID, resume.ID)
	if err != nil {
		return err
	}
	existing.Content = resume.Content
	existing.UpdatedAt = resume.UpdatedAt
	r.byID[resume.ID] = existing
	return nil
}

// SoftDelete marks a live resume as deleted.
func (r *MemoryRepo) SoftDelete(ctx context.Context, userID, resumeID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.lookup(userID, resumeID)
	if err != nil {
		return err
	}
	existing.DeletedAt = &at
	r.byID[resumeID] = existing
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
