package experiences

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/doccheck"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/experiences"

// Service contains business logic for experiences.
type Service struct {
	Repo  Repo
	Media media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Company     string
	Role        string
	Location    string
	Description string
	StartMonth  int
	StartYear   int
	EndMonth    *int
	EndYear     *int
	Status      string
	Order       int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns all experiences.
func (s *Service) List(ctx context.Context) ([]Experience, error) {
	return s.Repo.List(ctx)
}

// Get returns one experience or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Experience, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates, uploads the optional logo, then persists.
func (s *Service) Create(ctx context.Context, in CreateInput, logo *media.File) (Experience, error) {
	fe := validate.FieldErrors{}
	in.Company = fe.Required("company", in.Company)
	in.Role = fe.Required("role", in.Role)
	in.Status = fe.Required("status", in.Status)
	if err := fe.OrNil(); err != nil {
		return Experience{}, err
	}

	now := time.Now().UTC()
	e := Experience{
		ID:          uuid.NewString(),
		Company:     in.Company,
		Role:        in.Role,
		Location:    in.Location,
		Description: in.Description,
		StartMonth:  in.StartMonth,
		StartYear:   in.StartYear,
		EndMonth:    in.EndMonth,
		EndYear:     in.EndYear,
		Status:      in.Status,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := normalizeTimeline(&e); err != nil {
		return Experience{}, err
	}

	if logo != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, logo.Name, media.KindImage, logo.Reader)
		if err != nil {
			return Experience{}, err
		}
		e.Logo = uploaded
	}

	if err := s.Repo.Create(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
}

// Update merges provided fields, re-validating the status/date pairing; a new
// logo replaces the old asset.
func (s *Service) Update(ctx context.Context, id string, in Update, logo *media.File) (Experience, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Experience{}, err
	}

	applyString(&e.Company, in.Company)
	applyString(&e.Role, in.Role)
	applyString(&e.Location, in.Location)
	applyString(&e.Description, in.Description)
	if in.StartMonth != nil {
		e.StartMonth = *in.StartMonth
	}
	if in.StartYear != nil {
		e.StartYear = *in.StartYear
	}
	if in.EndMonth != nil {
		e.EndMonth = in.EndMonth
	}
	if in.EndYear != nil {
		e.EndYear = in.EndYear
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Order != nil {
		e.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	e.Company = fe.Required("company", e.Company)
	e.Role = fe.Required("role", e.Role)
	if err := fe.OrNil(); err != nil {
		return Experience{}, err
	}
	if err := normalizeTimeline(&e); err != nil {
		return Experience{}, err
	}

	if logo != nil {
		media.Cleanup(ctx, s.Media, e.Logo)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, logo.Name, media.KindImage, logo.Reader)
		if err != nil {
			return Experience{}, err
		}
		e.Logo = uploaded
	}

	e.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
}

// Delete removes every owned asset best-effort and deletes the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, e.Logo, e.OfferLetter, e.Certificate)
	return s.Repo.Delete(ctx, id)
}

// AttachDocument uploads a PDF into one of the raw document slots, replacing
// any previous attachment.
func (s *Service) AttachDocument(ctx context.Context, id string, slot DocSlot, file *media.File) (Experience, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Experience{}, err
	}
	target, err := slotAsset(&e, slot)
	if err != nil {
		return Experience{}, err
	}

	checked, err := doccheck.CheckPDF(file.Reader)
	if err != nil {
		return Experience{}, err
	}

	media.Cleanup(ctx, s.Media, *target)
	uploaded, err := s.Media.Upload(ctx, mediaFolder, file.Name, media.KindRaw, checked)
	if err != nil {
		return Experience{}, err
	}
	*target = uploaded
	e.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
}

// DetachDocument clears one raw document slot best-effort.
func (s *Service) DetachDocument(ctx context.Context, id string, slot DocSlot) (Experience, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Experience{}, err
	}
	target, err := slotAsset(&e, slot)
	if err != nil {
		return Experience{}, err
	}

	media.Cleanup(ctx, s.Media, *target)
	*target = media.Asset{}
	e.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, e); err != nil {
		return Experience{}, err
	}
	return e, nil
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

// normalizeTimeline enforces the status/date pairing: a completed entry needs
// an end month and year, an ongoing entry has neither.
func normalizeTimeline(e *Experience) error {
	fe := validate.FieldErrors{}
	switch e.Status {
	case StatusOngoing:
		e.EndMonth = nil
		e.EndYear = nil
	case StatusCompleted:
		if e.EndMonth == nil {
			fe.Add("endMonth", "is required when status is completed")
		} else if *e.EndMonth < 1 || *e.EndMonth > 12 {
			fe.Add("endMonth", "must be between 1 and 12")
		}
		if e.EndYear == nil {
			fe.Add("endYear", "is required when status is completed")
		}
	default:
		fe.Add("status", "must be ongoing or completed")
	}
	if e.StartMonth < 1 || e.StartMonth > 12 {
		fe.Add("startMonth", "must be between 1 and 12")
	}
	if e.StartYear == 0 {
		fe.Add("startYear", "is required")
	}
	return fe.OrNil()
}

func slotAsset(e *Experience, slot DocSlot) (*media.Asset, error) {
	switch slot {
	case SlotOfferLetter:
		return &e.OfferLetter, nil
	case SlotCertificate:
		return &e.Certificate, nil
	default:
		return nil, ErrUnknownSlot
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
