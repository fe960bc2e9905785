package articles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Article
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Article)}
}

// List returns articles matching the filter in display order.
func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Article, 0, len(r.entries))
	for _, a := range r.entries {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		pi, pj := out[i].PublishedAt, out[j].PublishedAt
		switch {
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one article.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Article, error) {
	if err := ctx.Err(); err != nil {
		return Article{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.entries[id]
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

// Create stores a new article.
func (r *MemoryRepo) Create(ctx context.Context, a Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[a.ID] = a
	return nil
}

// Update overwrites an article.
func (r *MemoryRepo) Update(ctx context.Context, a Article) error {
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

// Delete removes an article.
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
