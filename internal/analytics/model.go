package analytics

import "time"

// Event is one recorded visitor interaction.
type Event struct {
	ID        string    `json:"id"`
	EventType string    `json:"eventType"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"`
	VisitorID string    `json:"visitorId"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the public aggregate.
type Stats struct {
	TotalViews     int `json:"totalViews"`
	UniqueVisitors int `json:"uniqueVisitors"`
}

// PathCount is the view count for one path.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DailyCount is the event count for one day.
type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Detailed is the admin breakdown.
type Detailed struct {
	Stats  Stats        `json:"stats"`
	Paths  []PathCount  `json:"paths"`
	Recent []Event      `json:"recent"`
	Daily  []DailyCount `json:"daily"`
}
