package projects

import (
	"time"

	"portfolio-backend/internal/shared/storage/media"
)

// Project is a portfolio project entry.
type Project struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies []string    `json:"technologies"`
	LiveURL      string      `json:"liveUrl"`
	RepoURL      string      `json:"repoUrl"`
	Image        media.Asset `json:"image"`
	Featured     bool        `json:"featured"`
	ShowOnHome   bool        `json:"showOnHome"`
	Order        int         `json:"order"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Update carries a partial update; nil fields are left unchanged.
type Update struct {
	Title        *string
	Description  *string
	Technologies *[]string
	LiveURL      *string
	RepoURL      *string
	Featured     *bool
	ShowOnHome   *bool
	Order        *int
}

// Filter narrows project listings.
type Filter struct {
	Featured   *bool
	ShowOnHome *bool
}
