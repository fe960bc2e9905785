package analytics

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert records one event.
func (r *MemoryRepo) Insert(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Stats returns total event count and distinct visitor count.
func (r *MemoryRepo) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitors := map[string]struct{}{}
	for _, e := range r.events {
		if e.VisitorID != "" {
			visitors[e.VisitorID] = struct{}{}
		}
	}
	return Stats{TotalViews: len(r.events), UniqueVisitors: len(visitors)}, nil
}

// PathCounts returns the most-viewed paths.
func (r *MemoryRepo) PathCounts(ctx context.Context, limit int) ([]PathCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[string]int{}
	for _, e := range r.events {
		if e.Path != "" {
			counts[e.Path]++
		}
	}
	out := make([]PathCount, 0, len(counts))
	for path, count := range counts {
		out = append(out, PathCount{Path: path, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Path < out[j].Path
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Recent returns the latest events.
func (r *MemoryRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DailyCounts returns per-day event counts over the trailing window.
func (r *MemoryRepo) DailyCounts(ctx context.Context, days int) ([]DailyCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	counts := map[string]int{}
	for _, e := range r.events {
		if e.CreatedAt.Before(cutoff) {
			continue
		}
		counts[e.CreatedAt.UTC().Format("2006-01-02")]++
	}
	out := make([]DailyCount, 0, len(counts))
	for day, count := range counts {
		out = append(out, DailyCount{Day: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day > out[j].Day
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
