package certifications

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Certification is one earned credential. Certificate is the owned raw PDF,
// Image the owned badge image. ReusedImageURL borrows another organization's
// already-hosted image and is never removed by this entity.
type Certification struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Organization   string      `json:"organization"`
	IssueMonth     int         `json:"issueMonth"`
	IssueYear      int         `json:"issueYear"`
	CredentialID   string      `json:"credentialId"`
	CredentialURL  string      `json:"credentialUrl"`
	Certificate    media.Asset `json:"certificate"`
	Image          media.Asset `json:"image"`
	ReusedImageURL string      `json:"reusedImageUrl"`
	Order          int         `json:"order"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Update carries partial changes. Nil means unchanged.
type Update struct {
	Title          *string
	Organization   *string
	IssueMonth     *int
	IssueYear      *int
	CredentialID   *string
	CredentialURL  *string
	ReusedImageURL *string
	Order          *int
}
