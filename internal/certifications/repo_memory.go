package certifications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Certification
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Certification)}
}

// List returns all certifications in display order.
func (r *MemoryRepo) List(ctx context.Context) ([]Certification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Certification, 0, len(r.entries))
	for _, cert := range r.entries {
		out = append(out, cert)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if out[i].IssueYear != out[j].IssueYear {
			return out[i].IssueYear > out[j].IssueYear
		}
		if out[i].IssueMonth != out[j].IssueMonth {
			return out[i].IssueMonth > out[j].IssueMonth
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one certification.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Certification, error) {
	if err := ctx.Err(); err != nil {
		return Certification{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, ok := r.entries[id]
	if !ok {
		return Certification{}, ErrNotFound
	}
	return cert, nil
}

// Create stores a new certification.
func (r *MemoryRepo) Create(ctx context.Context, cert Certification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[cert.ID] = cert
	return nil
}

// Update overwrites a certification.
func (r *MemoryRepo) Update(ctx context.Context, cert Certification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[cert.ID]; !ok {
		return ErrNotFound
	}
	r.entries[cert.ID] = cert
	return nil
}

// Delete removes a certification.
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
	cert, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	cert.Order = order
	r.entries[id] = cert
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
