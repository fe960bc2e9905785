package education

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Education
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Education)}
}

// List returns all education entries in display order.
func (r *MemoryRepo) List(ctx context.Context) ([]Education, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Education, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if out[i].StartYear != out[j].StartYear {
			return out[i].StartYear > out[j].StartYear
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one education entry.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Education, error) {
	if err := ctx.Err(); err != nil {
		return Education{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Education{}, ErrNotFound
	}
	return e, nil
}

// Create stores a new education entry.
func (r *MemoryRepo) Create(ctx context.Context, e Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
	return nil
}

// Update overwrites an education entry.
func (r *MemoryRepo) Update(ctx context.Context, e Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return ErrNotFound
	}
	r.entries[e.ID] = e
	return nil
}

// Delete removes an education entry.
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
	e, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	e.Order = order
	r.entries[id] = e
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
