package drafts

import (
	"context"
	"sync"
	"time"

	"cv-builder/internal/shared/telemetry"
)

// Store keeps drafts in memory. Each draft has its own lock so edits to one
// draft are applied in order without blocking the others.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[string]*slot
}

type slot struct {
	mu    sync.Mutex
	draft Draft
	gone  bool
}

// NewStore constructs a Store whose drafts expire ttl after their last change.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
		drafts: make(map[string]*slot),
	}
}

// Create stores a new draft and stamps its timestamps.
func (s *Store) Create(ctx context.Context, d Draft) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	now := s.now()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = &slot{draft: d}
	return d, nil
}

// Get returns a live draft owned by userID.
func (s *Store) Get(ctx context.Context, userID, draftID string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	sl, err := s.acquire(userID, draftID)
	if err != nil {
		return Draft{}, err
	}
	defer sl.mu.Unlock()
	return sl.draft, nil
}

// Update runs fn on the latest state of the draft while holding its lock and
// stores the result. An error from fn leaves the draft unchanged.
func (s *Store) Update(ctx context.Context, userID, draftID string, fn func(Draft) (Draft, error)) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	sl, err := s.acquire(userID, draftID)
	if err != nil {
		return Draft{}, err
	}
	defer sl.mu.Unlock()

	next, err := fn(sl.draft)
	if err != nil {
		return Draft{}, err
	}
	now := s.now()
	next.ID = sl.draft.ID
	next.UserID = sl.draft.UserID
	next.CreatedAt = sl.draft.CreatedAt
	next.UpdatedAt = now
	next.ExpiresAt = now.Add(s.ttl)
	sl.draft = next
	return next, nil
}

// Consume runs fn on the draft while holding its lock and removes the draft
// when fn succeeds. Concurrent callers see ErrNotFound afterwards.
func (s *Store) Consume(ctx context.Context, userID, draftID string, fn func(Draft) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sl, err := s.acquire(userID, draftID)
	if err != nil {
		return err
	}
	defer sl.mu.Unlock()

	if err := fn(sl.draft); err != nil {
		return err
	}
	s.remove(draftID, sl)
	return nil
}

// Delete discards a draft.
func (s *Store) Delete(ctx context.Context, userID, draftID string) error {
	return s.Consume(ctx, userID, draftID, func(Draft) error { return nil })
}

// Sweep removes expired drafts and reports how many were dropped.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sl := range s.drafts {
		if !sl.mu.TryLock() {
			continue
		}
		if now.After(sl.draft.ExpiresAt) {
			sl.gone = true
			delete(s.drafts, id)
			removed++
		}
		sl.mu.Unlock()
	}
	return removed
}

// Run sweeps expired drafts every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				telemetry.Info("drafts.swept", map[string]any{"removed": n})
			}
		}
	}
}

// Len returns the number of drafts held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// acquire returns the draft slot locked. Callers must unlock it.
func (s *Store) acquire(userID, draftID string) (*slot, error) {
	s.mu.Lock()
	sl, ok := s.drafts[draftID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	sl.mu.Lock()
	if sl.gone {
		sl.mu.Unlock()
		return nil, ErrNotFound
	}
	if s.now().After(sl.draft.ExpiresAt) {
		s.remove(draftID, sl)
		sl.mu.Unlock()
		return nil, ErrNotFound
	}
	if sl.draft.UserID != userID {
		sl.mu.Unlock()
		return nil, ErrForbidden
	}
	return sl, nil
}

// remove drops the slot; the caller holds sl.mu.
func (s *Store) remove(draftID string, sl *slot) {
	sl.gone = true
	s.mu.Lock()
	if s.drafts[draftID] == sl {
		delete(s.drafts, draftID)
	}
	s.mu.Unlock()
}
