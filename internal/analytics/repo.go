package analytics

import "context"

// Repo defines persistence operations for analytics events.
type Repo interface {
	Insert(ctx context.Context, e Event) error
	Stats(ctx context.Context) (Stats, error)
	PathCounts(ctx context.Context, limit int) ([]PathCount, error)
	Recent(ctx context.Context, limit int) ([]Event, error)
	DailyCounts(ctx context.Context, days int) ([]DailyCount, error)
}
