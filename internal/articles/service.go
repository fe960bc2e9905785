package articles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/articles"

// Service contains business logic for articles.
type Service struct {
	Repo  Repo
	Media media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Title       string
	Summary     string
	Content     string
	Tags        []string
	Status      string
	Pinned      bool
	ExternalURL string
	Order       int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns articles matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Article, error) {
	return s.Repo.List(ctx, f)
}

// Get returns one article or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates, uploads the optional cover, then persists. Articles
// created as published get their publication time stamped immediately.
func (s *Service) Create(ctx context.Context, in CreateInput, cover *media.File) (Article, error) {
	fe := validate.FieldErrors{}
	in.Title = fe.Required("title", in.Title)
	if in.Status == "" {
		in.Status = StatusDraft
	}
	if in.Status != StatusDraft && in.Status != StatusPublished {
		fe.Add("status", "must be draft or published")
	}
	if err := fe.OrNil(); err != nil {
		return Article{}, err
	}

	now := time.Now().UTC()
	a := Article{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Summary:     in.Summary,
		Content:     in.Content,
		Tags:        in.Tags,
		Status:      in.Status,
		Pinned:      in.Pinned,
		ExternalURL: in.ExternalURL,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.Status == StatusPublished {
		a.PublishedAt = &now
	}

	if cover != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, cover.Name, media.KindImage, cover.Reader)
		if err != nil {
			return Article{}, err
		}
		a.Cover = uploaded
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Update merges provided fields; a status change through here follows the
// same publish/unpublish stamping as ToggleStatus. A new cover replaces the
// old asset.
func (s *Service) Update(ctx context.Context, id string, in Update, cover *media.File) (Article, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Article{}, err
	}

	applyString(&a.Title, in.Title)
	applyString(&a.Summary, in.Summary)
	applyString(&a.Content, in.Content)
	if in.Tags != nil {
		a.Tags = *in.Tags
		if a.Tags == nil {
			a.Tags = []string{}
		}
	}
	if in.Status != nil && *in.Status != a.Status {
		if err := s.setStatus(&a, *in.Status); err != nil {
			return Article{}, err
		}
	}
	if in.Pinned != nil {
		a.Pinned = *in.Pinned
	}
	applyString(&a.ExternalURL, in.ExternalURL)
	if in.Order != nil {
		a.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	a.Title = fe.Required("title", a.Title)
	if err := fe.OrNil(); err != nil {
		return Article{}, err
	}

	if cover != nil {
		media.Cleanup(ctx, s.Media, a.Cover)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, cover.Name, media.KindImage, cover.Reader)
		if err != nil {
			return Article{}, err
		}
		a.Cover = uploaded
	}

	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// ToggleStatus flips draft to published and back, stamping or clearing the
// publication time.
func (s *Service) ToggleStatus(ctx context.Context, id string) (Article, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Article{}, err
	}

	next := StatusPublished
	if a.Status == StatusPublished {
		next = StatusDraft
	}
	if err := s.setStatus(&a, next); err != nil {
		return Article{}, err
	}

	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// TogglePinned flips the pinned flag.
func (s *Service) TogglePinned(ctx context.Context, id string) (Article, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Article{}, err
	}
	a.Pinned = !a.Pinned
	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Delete removes the cover best-effort and deletes the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, a.Cover)
	return s.Repo.Delete(ctx, id)
}

// Reorder applies each (id, order) pair independently.
func (s *Service) Reorder(ctx context.Context, pairs []OrderPair) map[string]string {
	failed := map[string]string{}
	for _, pair := range pairs {
		if err := s.Repo.SetOrder(ctx, pair.ID, pair.Order); err != nil {
			failed[pair.ID] = err.Error()
		}
	}
	return failed
}

func (s *Service) setStatus(a *Article, status string) error {
	switch status {
	case StatusPublished:
		a.Status = StatusPublished
		if a.PublishedAt == nil {
			now := time.Now().UTC()
			a.PublishedAt = &now
		}
	case StatusDraft:
		a.Status = StatusDraft
		a.PublishedAt = nil
	default:
		return validate.FieldErrors{"status": "must be draft or published"}
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
