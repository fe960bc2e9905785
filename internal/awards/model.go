package awards

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Association types an award can point at. An empty type means the award
// stands alone.
const (
	AssociationNone       = ""
	AssociationExperience = "experience"
	AssociationEducation  = "education"
)

// Award is one recognition entry, optionally tied to the experience or
// education it was earned during.
type Award struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Issuer         string      `json:"issuer"`
	Description    string      `json:"description"`
	Year           int         `json:"year"`
	AssociatedType string      `json:"associatedType"`
	AssociatedID   string      `json:"associatedId"`
	Image          media.Asset `json:"image"`
	Order          int         `json:"order"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Update carries partial changes. Nil means unchanged. AssociatedType and
// AssociatedID travel together: providing a type re-validates the reference.
type Update struct {
	Title          *string
	Issuer         *string
	Description    *string
	Year           *int
	AssociatedType *string
	AssociatedID   *string
	Order          *int
}

// Option is one pickable association target.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Associations lists the pickable targets for the admin form.
type Associations struct {
	Experiences []Option `json:"experiences"`
	Educations  []Option `json:"educations"`
}
