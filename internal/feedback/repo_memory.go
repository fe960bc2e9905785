package feedback

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Feedback
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Feedback)}
}

// List returns feedback entries matching the filter, newest first.
func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Feedback, 0, len(r.entries))
	for _, fb := range r.entries {
		if f.Approved != nil && fb.Approved != *f.Approved {
			continue
		}
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one feedback entry.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fb, ok := r.entries[id]
	if !ok {
		return Feedback{}, ErrNotFound
	}
	return fb, nil
}

// Create stores a new feedback entry.
func (r *MemoryRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[fb.ID] = fb
	return nil
}

// Update overwrites a feedback entry.
func (r *MemoryRepo) Update(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[fb.ID]; !ok {
		return ErrNotFound
	}
	r.entries[fb.ID] = fb
	return nil
}

// Delete removes a feedback entry.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
