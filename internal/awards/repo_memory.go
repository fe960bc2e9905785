package awards

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Award
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Award)}
}

// List returns all awards in display order.
func (r *MemoryRepo) List(ctx context.Context) ([]Award, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Award, 0, len(r.entries))
	for _, a := range r.entries {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one award.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Award, error) {
	if err := ctx.Err(); err != nil {
		return Award{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.entries[id]
	if !ok {
		return Award{}, ErrNotFound
	}
	return a, nil
}

// Create stores a new award.
func (r *MemoryRepo) Create(ctx context.Context, a Award) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[a.ID] = a
	return nil
}

// Update overwrites an award.
func (r *MemoryRepo) Update(ctx context.Context, a Award) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[a.ID]; !ok {
		return ErrNotFound
	}
	r.entries[a.ID] = a
	return nil
}

// Delete removes an award.
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

// SetOrder updates the manual sort key.
func (r *MemoryRepo) SetOrder(ctx context.Context, id string, order int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	a.Order = order
	r.entries[id] = a
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
