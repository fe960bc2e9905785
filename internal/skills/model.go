package skills

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Category groups skills for display. Names are unique case-insensitively.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Skill is a single skill entry. Names are unique case-insensitively within
// their category.
type Skill struct {
	ID         string      `json:"id"`
	CategoryID string      `json:"categoryId"`
	Name       string      `json:"name"`
	Level      int         `json:"level"`
	Icon       media.Asset `json:"icon"`
	Order      int         `json:"order"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// CategoryWithSkills is the grouped public listing shape.
type CategoryWithSkills struct {
	Category
	Skills []Skill `json:"skills"`
}

// SkillUpdate carries a partial skill update; nil fields are left unchanged.
type SkillUpdate struct {
	Name       *string
	CategoryID *string
	Level      *int
	Order      *int
}

// CategoryUpdate carries a partial category update.
type CategoryUpdate struct {
	Name  *string
	Order *int
}
