package resumes

import (
	"context"
	"time"
)

// Repo defines persistence operations for saved resumes.
type Repo interface {
	Create(ctx context.Context, resume StoredResume) error
	GetByID(ctx context.Context, userID, resumeID string) (StoredResume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]StoredResume, error)
	Update(ctx context.Context, resume StoredResume) error
	SoftDelete(ctx context.Context, userID, resumeID string, at time.Time) error
}
