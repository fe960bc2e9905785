package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	stored  Profile
	present bool
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Get returns the stored profile.
func (r *MemoryRepo) Get(ctx context.Context) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.present {
		return Profile{}, ErrNotFound
	}
	return r.stored, nil
}

// Upsert stores the profile.
func (r *MemoryRepo) Upsert(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = p
	r.present = true
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
