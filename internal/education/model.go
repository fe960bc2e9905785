package education

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Status values for an education entry.
const (
	StatusPursuing  = "pursuing"
	StatusCompleted = "completed"
)

// Education is one academic record. Completed entries carry a completion
// year; pursuing entries have none.
type Education struct {
	ID             string      `json:"id"`
	Institution    string      `json:"institution"`
	Degree         string      `json:"degree"`
	FieldOfStudy   string      `json:"fieldOfStudy"`
	Grade          string      `json:"grade"`
	Description    string      `json:"description"`
	StartYear      int         `json:"startYear"`
	CompletionYear *int        `json:"completionYear,omitempty"`
	Status         string      `json:"status"`
	Logo           media.Asset `json:"logo"`
	Order          int         `json:"order"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Update carries partial changes. Nil means unchanged.
type Update struct {
	Institution    *string
	Degree         *string
	FieldOfStudy   *string
	Grade          *string
	Description    *string
	StartYear      *int
	CompletionYear *int
	Status         *string
	Order          *int
}
