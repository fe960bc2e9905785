package contact

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Message
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]Message)}
}

// List returns all messages, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0, len(r.entries))
	for _, m := range r.entries {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID fetches one message.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.entries[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	return m, nil
}

// Create stores a new message.
func (r *MemoryRepo) Create(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[m.ID] = m
	return nil
}

// MarkRead flags one message as read.
func (r *MemoryRepo) MarkRead(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	m.Read = true
	r.entries[id] = m
	return nil
}

// Delete removes a message.
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

// CountUnread counts messages not yet read.
func (r *MemoryRepo) CountUnread(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, m := range r.entries {
		if !m.Read {
			count++
		}
	}
	return count, nil
}

var _ Repo = (*MemoryRepo)(nil)
