package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/education"

// Service contains business logic for education entries.
type Service struct {
	Repo  Repo
	Media media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Institution    string
	Degree         string
	FieldOfStudy   string
	Grade          string
	Description    string
	StartYear      int
	CompletionYear *int
	Status         string
	Order          int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns all education entries.
func (s *Service) List(ctx context.Context) ([]Education, error) {
	return s.Repo.List(ctx)
}

// Get returns one entry or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Education, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates, uploads the optional logo, then persists.
func (s *Service) Create(ctx context.Context, in CreateInput, logo *media.File) (Education, error) {
	fe := validate.FieldErrors{}
	in.Institution = fe.Required("institution", in.Institution)
	in.Degree = fe.Required("degree", in.Degree)
	in.Status = fe.Required("status", in.Status)
	if err := fe.OrNil(); err != nil {
		return Education{}, err
	}

	now := time.Now().UTC()
	e := Education{
		ID:             uuid.NewString(),
		Institution:    in.Institution,
		Degree:         in.Degree,
		FieldOfStudy:   in.FieldOfStudy,
		Grade:          in.Grade,
		Description:    in.Description,
		StartYear:      in.StartYear,
		CompletionYear: in.CompletionYear,
		Status:         in.Status,
		Order:          in.Order,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := normalizeTimeline(&e); err != nil {
		return Education{}, err
	}

	if logo != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, logo.Name, media.KindImage, logo.Reader)
		if err != nil {
			return Education{}, err
		}
		e.Logo = uploaded
	}

	if err := s.Repo.Create(ctx, e); err != nil {
		return Education{}, err
	}
	return e, nil
}

// Update merges provided fields, re-validating the status/year pairing; a new
// logo replaces the old asset.
func (s *Service) Update(ctx context.Context, id string, in Update, logo *media.File) (Education, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Education{}, err
	}

	applyString(&e.Institution, in.Institution)
	applyString(&e.Degree, in.Degree)
	applyString(&e.FieldOfStudy, in.FieldOfStudy)
	applyString(&e.Grade, in.Grade)
	applyString(&e.Description, in.Description)
	if in.StartYear != nil {
		e.StartYear = *in.StartYear
	}
	if in.CompletionYear != nil {
		e.CompletionYear = in.CompletionYear
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Order != nil {
		e.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	e.Institution = fe.Required("institution", e.Institution)
	e.Degree = fe.Required("degree", e.Degree)
	if err := fe.OrNil(); err != nil {
		return Education{}, err
	}
	if err := normalizeTimeline(&e); err != nil {
		return Education{}, err
	}

	if logo != nil {
		media.Cleanup(ctx, s.Media, e.Logo)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, logo.Name, media.KindImage, logo.Reader)
		if err != nil {
			return Education{}, err
		}
		e.Logo = uploaded
	}

	e.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, e); err != nil {
		return Education{}, err
	}
	return e, nil
}

// Delete removes the logo best-effort and deletes the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, e.Logo)
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

// normalizeTimeline enforces the status/year pairing: completed entries need
// a completion year, pursuing entries have none.
func normalizeTimeline(e *Education) error {
	fe := validate.FieldErrors{}
	switch e.Status {
	case StatusPursuing:
		e.CompletionYear = nil
	case StatusCompleted:
		if e.CompletionYear == nil {
			fe.Add("completionYear", "is required when status is completed")
		}
	default:
		fe.Add("status", "must be pursuing or completed")
	}
	if e.StartYear == 0 {
		fe.Add("startYear", "is required")
	}
	return fe.OrNil()
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
