package feedback

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Feedback is one visitor-submitted testimonial. Only approved entries are
// served on the public testimonial listing.
type Feedback struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Company   string      `json:"company"`
	Message   string      `json:"message"`
	Rating    int         `json:"rating"`
	Approved  bool        `json:"approved"`
	Avatar    media.Asset `json:"avatar"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Update carries partial moderation edits. Nil means unchanged.
type Update struct {
	Name    *string
	Email   *string
	Role    *string
	Company *string
	Message *string
	Rating  *int
}

// Filter restricts feedback listings.
type Filter struct {
	Approved *bool
}
