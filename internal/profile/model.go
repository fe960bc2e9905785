package profile

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// singletonID keys the one profile row. Concurrent first reads all upsert
// against this id, so they converge on the same row.
const singletonID = "profile"

// Profile is the site owner's single biographical document. Exactly one row
// exists; reads create it on demand.
type Profile struct {
	ID          string      `json:"id"`
	FullName    string      `json:"fullName"`
	Title       string      `json:"title"`
	Tagline     string      `json:"tagline"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	GithubURL   string      `json:"githubUrl"`
	LinkedinURL string      `json:"linkedinUrl"`
	TwitterURL  string      `json:"twitterUrl"`
	Image       media.Asset `json:"image"`
	Resume      media.Asset `json:"resume"`
	AboutImage  media.Asset `json:"aboutImage"`
	Logo        media.Asset `json:"logo"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Update carries partial text-field changes. Nil means unchanged.
type Update struct {
	FullName    *string
	Title       *string
	Tagline     *string
	Bio         *string
	Email       *string
	Phone       *string
	Location    *string
	GithubURL   *string
	LinkedinURL *string
	TwitterURL  *string
}

// AssetSlot names one of the profile's owned media attachments.
type AssetSlot string

const (
	SlotImage      AssetSlot = "image"
	SlotResume     AssetSlot = "resume"
	SlotAboutImage AssetSlot = "about-image"
	SlotLogo       AssetSlot = "logo"
)
