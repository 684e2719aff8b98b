package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. Content is stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume.
func (r *PGRepo) Create(ctx context.Context, resume StoredResume) error {
	content, err := encodeContent(resume)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resumes (
    id, user_id, title, content, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Content.Title,
		content,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID returns a live resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (StoredResume, error) {
	const query = `
SELECT id, user_id, content, created_at, updated_at
FROM resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredResume{}, ErrNotFound
		}
		return StoredResume{}, err
	}
	if resume.UserID != userID {
		return StoredResume{}, ErrForbidden
	}
	return resume, nil
}

// ListByUser lists live resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]StoredResume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, content, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredResume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update replaces the content of a live resume owned by resume.UserID.
func (r *PGRepo) Update(ctx context.Context, resume StoredResume) error {
	content, err := encodeContent(resume)
	if err != nil {
		return err
	}
	const query = `
UPDATE resumes
SET title = $3, content = $4, updated_at = $5
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Content.Title,
		content,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SoftDelete sets deleted_at on a live resume.
func (r *PGRepo) SoftDelete(ctx context.Context, userID, resumeID string, at time.Time) error {
	const query = `
UPDATE resumes
SET deleted_at = $3
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID, at)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (StoredResume, error) {
	var (
		resume  StoredResume
		content []byte
	)
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return StoredResume{}, err
	}
	if err := json.Unmarshal(content, &resume.Content); err != nil {
		return StoredResume{}, fmt.Errorf("decode resume %s: %w", resume.ID, err)
	}
	resume.Content.ID = ""
	return resume, nil
}

func encodeContent(resume StoredResume) ([]byte, error) {
	content := withCollections(resume.Content)
	content.ID = ""
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode resume %s: %w", resume.ID, err)
	}
	return raw, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
