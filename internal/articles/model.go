package articles

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Status values for an article.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is one written piece. PublishedAt is set the first time the
// article goes to published and cleared when it returns to draft.
type Article struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Summary     string      `json:"summary"`
	Content     string      `json:"content"`
	Tags        []string    `json:"tags"`
	Status      string      `json:"status"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
	Pinned      bool        `json:"pinned"`
	ExternalURL string      `json:"externalUrl"`
	Cover       media.Asset `json:"cover"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Update carries partial changes. Nil means unchanged.
type Update struct {
	Title       *string
	Summary     *string
	Content     *string
	Tags        *[]string
	Status      *string
	Pinned      *bool
	ExternalURL *string
	Order       *int
}

// Filter restricts article listings.
type Filter struct {
	Status string
}
