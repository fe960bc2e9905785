package analytics

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert records one event.
func (r *PGRepo) Insert(ctx context.Context, e Event) error {
	const query = `
INSERT INTO analytics_events (id, event_type, path, referrer, visitor_id, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.EventType, e.Path, e.Referrer, e.VisitorID, e.UserAgent, e.CreatedAt)
	return err
}

// Stats returns total event count and distinct visitor count.
func (r *PGRepo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.DB.QueryRowContext(ctx, `
SELECT COUNT(*), COUNT(DISTINCT visitor_id) FILTER (WHERE visitor_id <> '')
FROM analytics_events`).Scan(&s.TotalViews, &s.UniqueVisitors)
	return s, err
}

// PathCounts returns the most-viewed paths.
func (r *PGRepo) PathCounts(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT path, COUNT(*) FROM analytics_events
WHERE path <> '' GROUP BY path ORDER BY COUNT(*) DESC, path ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the latest events.
func (r *PGRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, event_type, path, referrer, visitor_id, user_agent, created_at
FROM analytics_events ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.Path, &e.Referrer, &e.VisitorID, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DailyCounts returns per-day event counts over the trailing window.
func (r *PGRepo) DailyCounts(ctx context.Context, days int) ([]DailyCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, COUNT(*)
FROM analytics_events
WHERE created_at >= NOW() - ($1 || ' days')::interval
GROUP BY day ORDER BY day DESC`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
