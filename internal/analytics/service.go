package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/validate"
)

const (
	pathLimit   = 20
	recentLimit = 50
	dailyWindow = 30
)

// Service contains business logic for analytics events.
type Service struct {
	Repo Repo
}

// TrackInput carries one public tracking call.
type TrackInput struct {
	EventType string `json:"eventType"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	VisitorID string `json:"visitorId"`
	UserAgent string `json:"userAgent"`
}

// Track validates and records one event.
func (s *Service) Track(ctx context.Context, in TrackInput) (Event, error) {
	fe := validate.FieldErrors{}
	in.EventType = fe.Required("eventType", in.EventType)
	if err := fe.OrNil(); err != nil {
		return Event{}, err
	}

	e := Event{
		ID:        uuid.NewString(),
		EventType: in.EventType,
		Path:      in.Path,
		Referrer:  in.Referrer,
		VisitorID: in.VisitorID,
		UserAgent: in.UserAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Stats returns the public aggregate.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.Repo.Stats(ctx)
}

// Detailed returns the admin breakdown.
func (s *Service) Detailed(ctx context.Context) (Detailed, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return Detailed{}, err
	}
	paths, err := s.Repo.PathCounts(ctx, pathLimit)
	if err != nil {
		return Detailed{}, err
	}
	recent, err := s.Repo.Recent(ctx, recentLimit)
	if err != nil {
		return Detailed{}, err
	}
	daily, err := s.Repo.DailyCounts(ctx, dailyWindow)
	if err != nil {
		return Detailed{}, err
	}

	if paths == nil {
		paths = []PathCount{}
	}
	if recent == nil {
		recent = []Event{}
	}
	if daily == nil {
		daily = []DailyCount{}
	}
	return Detailed{Stats: stats, Paths: paths, Recent: recent, Daily: daily}, nil
}
