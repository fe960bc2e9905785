package awards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/education"
	"portfolio-backend/internal/experiences"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/awards"

// Service contains business logic for awards. It reads the experience and
// education repositories to validate association targets and to build the
// admin picker.
type Service struct {
	Repo        Repo
	Experiences experiences.Repo
	Education   education.Repo
	Media       media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Title          string
	Issuer         string
	Description    string
	Year           int
	AssociatedType string
	AssociatedID   string
	Order          int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns all awards.
func (s *Service) List(ctx context.Context) ([]Award, error) {
	return s.Repo.List(ctx)
}

// Get returns one award or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Award, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListAssociations returns the pickable experience and education targets.
func (s *Service) ListAssociations(ctx context.Context) (Associations, error) {
	exps, err := s.Experiences.List(ctx)
	if err != nil {
		return Associations{}, err
	}
	edus, err := s.Education.List(ctx)
	if err != nil {
		return Associations{}, err
	}

	out := Associations{Experiences: []Option{}, Educations: []Option{}}
	for _, e := range exps {
		out.Experiences = append(out.Experiences, Option{
			ID:    e.ID,
			Label: fmt.Sprintf("%s (%s)", e.Company, e.Role),
		})
	}
	for _, e := range edus {
		out.Educations = append(out.Educations, Option{
			ID:    e.ID,
			Label: fmt.Sprintf("%s (%s)", e.Institution, e.Degree),
		})
	}
	return out, nil
}

// Create validates the association reference, uploads the optional image,
// then persists.
func (s *Service) Create(ctx context.Context, in CreateInput, image *media.File) (Award, error) {
	fe := validate.FieldErrors{}
	in.Title = fe.Required("title", in.Title)
	if err := fe.OrNil(); err != nil {
		return Award{}, err
	}

	now := time.Now().UTC()
	a := Award{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Issuer:         in.Issuer,
		Description:    in.Description,
		Year:           in.Year,
		AssociatedType: in.AssociatedType,
		AssociatedID:   in.AssociatedID,
		Order:          in.Order,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.checkAssociation(ctx, &a); err != nil {
		return Award{}, err
	}

	if image != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
		if err != nil {
			return Award{}, err
		}
		a.Image = uploaded
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return Award{}, err
	}
	return a, nil
}

// Update merges provided fields, re-validating the association when it
// changes; a new image replaces the old asset.
func (s *Service) Update(ctx context.Context, id string, in Update, image *media.File) (Award, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Award{}, err
	}

	applyString(&a.Title, in.Title)
	applyString(&a.Issuer, in.Issuer)
	applyString(&a.Description, in.Description)
	if in.Year != nil {
		a.Year = *in.Year
	}
	if in.AssociatedType != nil {
		a.AssociatedType = *in.AssociatedType
	}
	if in.AssociatedID != nil {
		a.AssociatedID = *in.AssociatedID
	}
	if in.Order != nil {
		a.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	a.Title = fe.Required("title", a.Title)
	if err := fe.OrNil(); err != nil {
		return Award{}, err
	}
	if in.AssociatedType != nil || in.AssociatedID != nil {
		if err := s.checkAssociation(ctx, &a); err != nil {
			return Award{}, err
		}
	}

	if image != nil {
		media.Cleanup(ctx, s.Media, a.Image)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
		if err != nil {
			return Award{}, err
		}
		a.Image = uploaded
	}

	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Award{}, err
	}
	return a, nil
}

// Delete removes the image best-effort and deletes the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, a.Image)
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

// checkAssociation enforces the tagged reference: no association means no id,
// and a typed association must point at an existing document.
func (s *Service) checkAssociation(ctx context.Context, a *Award) error {
	switch a.AssociatedType {
	case AssociationNone:
		a.AssociatedID = ""
		return nil
	case AssociationExperience:
		if a.AssociatedID == "" {
			return validate.FieldErrors{"associatedId": "is required for an experience association"}
		}
		if _, err := s.Experiences.GetByID(ctx, a.AssociatedID); err != nil {
			if errors.Is(err, experiences.ErrNotFound) {
				return validate.FieldErrors{"associatedId": "unknown experience"}
			}
			return err
		}
		return nil
	case AssociationEducation:
		if a.AssociatedID == "" {
			return validate.FieldErrors{"associatedId": "is required for an education association"}
		}
		if _, err := s.Education.GetByID(ctx, a.AssociatedID); err != nil {
			if errors.Is(err, education.ErrNotFound) {
				return validate.FieldErrors{"associatedId": "unknown education entry"}
			}
			return err
		}
		return nil
	default:
		return validate.FieldErrors{"associatedType": "must be empty, experience or education"}
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
