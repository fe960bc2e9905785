package experiences

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Status values for an experience entry.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Experience is one professional engagement. Completed entries carry an end
// month and year; ongoing entries have neither.
type Experience struct {
	ID          string      `json:"id"`
	Company     string      `json:"company"`
	Role        string      `json:"role"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	StartMonth  int         `json:"startMonth"`
	StartYear   int         `json:"startYear"`
	EndMonth    *int        `json:"endMonth,omitempty"`
	EndYear     *int        `json:"endYear,omitempty"`
	Status      string      `json:"status"`
	Logo        media.Asset `json:"logo"`
	OfferLetter media.Asset `json:"offerLetter"`
	Certificate media.Asset `json:"certificate"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Update carries partial changes. Nil means unchanged.
type Update struct {
	Company     *string
	Role        *string
	Location    *string
	Description *string
	StartMonth  *int
	StartYear   *int
	EndMonth    *int
	EndYear     *int
	Status      *string
	Order       *int
}

// DocSlot names one of the raw document attachments.
type DocSlot string

const (
	SlotOfferLetter DocSlot = "offer-letter"
	SlotCertificate DocSlot = "certificate"
)
