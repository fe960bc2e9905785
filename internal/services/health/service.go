package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a health service. db may be nil when running on
// in-memory repositories.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status reports liveness plus the persistence backend state.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"ok": true, "storage": "memory"}
	if s.db == nil {
		return out
	}
	out["storage"] = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		out["ok"] = false
		out["storage_error"] = err.Error()
	}
	return out
}
