package projects

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/projects"

// Service contains business logic for projects.
type Service struct {
	Repo  Repo
	Media media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Title        string
	Description  string
	Technologies []string
	LiveURL      string
	RepoURL      string
	Featured     bool
	ShowOnHome   bool
	Order        int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns projects matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Project, error) {
	return s.Repo.List(ctx, f)
}

// Get returns one project or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates input, uploads the required image, then persists. A failed
// upload aborts before any document is written.
func (s *Service) Create(ctx context.Context, in CreateInput, image *media.File) (Project, error) {
	fe := validate.FieldErrors{}
	in.Title = fe.Required("title", in.Title)
	in.Description = fe.Required("description", in.Description)
	if image == nil {
		fe.Add("image", "is required")
	}
	if err := fe.OrNil(); err != nil {
		return Project{}, err
	}

	asset, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
	if err != nil {
		return Project{}, err
	}

	now := time.Now().UTC()
	p := Project{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		LiveURL:      in.LiveURL,
		RepoURL:      in.RepoURL,
		Image:        asset,
		Featured:     in.Featured,
		ShowOnHome:   in.ShowOnHome,
		Order:        in.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Update merges the provided fields into the stored project. A new image
// replaces the old asset: the previous public ID is removed best-effort
// before the new file is uploaded.
func (s *Service) Update(ctx context.Context, id string, in Update, image *media.File) (Project, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}

	applyString(&p.Title, in.Title)
	applyString(&p.Description, in.Description)
	applyString(&p.LiveURL, in.LiveURL)
	applyString(&p.RepoURL, in.RepoURL)
	if in.Technologies != nil {
		p.Technologies = *in.Technologies
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.ShowOnHome != nil {
		p.ShowOnHome = *in.ShowOnHome
	}
	if in.Order != nil {
		p.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	p.Title = fe.Required("title", p.Title)
	p.Description = fe.Required("description", p.Description)
	if err := fe.OrNil(); err != nil {
		return Project{}, err
	}

	if image != nil {
		media.Cleanup(ctx, s.Media, p.Image)
		asset, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
		if err != nil {
			return Project{}, err
		}
		p.Image = asset
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Delete removes the owned image best-effort and always deletes the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, p.Image)
	return s.Repo.Delete(ctx, id)
}

// ToggleFeatured flips the featured flag and returns the new value.
func (s *Service) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	p.Featured = !p.Featured
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return false, err
	}
	return p.Featured, nil
}

// ToggleShowOnHome flips the home-visibility flag and returns the new value.
func (s *Service) ToggleShowOnHome(ctx context.Context, id string) (bool, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	p.ShowOnHome = !p.ShowOnHome
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return false, err
	}
	return p.ShowOnHome, nil
}

// Reorder applies each (id, order) pair independently. Pairs that fail are
// reported back; successful pairs stay applied.
func (s *Service) Reorder(ctx context.Context, pairs []OrderPair) map[string]string {
	failed := map[string]string{}
	for _, pair := range pairs {
		if err := s.Repo.SetOrder(ctx, pair.ID, pair.Order); err != nil {
			failed[pair.ID] = err.Error()
		}
	}
	return failed
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
