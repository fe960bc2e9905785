package certifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/doccheck"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/certifications"

// Service contains business logic for certifications.
type Service struct {
	Repo  Repo
	Media media.Store
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Title          string
	Organization   string
	IssueMonth     int
	IssueYear      int
	CredentialID   string
	CredentialURL  string
	ReusedImageURL string
	Order          int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns all certifications.
func (s *Service) List(ctx context.Context) ([]Certification, error) {
	return s.Repo.List(ctx)
}

// Get returns one certification or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Certification, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates, uploads the optional certificate PDF and badge image,
// then persists. Both uploads happen before the first write so a failed
// upload leaves no document behind.
func (s *Service) Create(ctx context.Context, in CreateInput, certificate, image *media.File) (Certification, error) {
	fe := validate.FieldErrors{}
	in.Title = fe.Required("title", in.Title)
	in.Organization = fe.Required("organization", in.Organization)
	if err := fe.OrNil(); err != nil {
		return Certification{}, err
	}

	now := time.Now().UTC()
	cert := Certification{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Organization:   in.Organization,
		IssueMonth:     in.IssueMonth,
		IssueYear:      in.IssueYear,
		CredentialID:   in.CredentialID,
		CredentialURL:  in.CredentialURL,
		ReusedImageURL: in.ReusedImageURL,
		Order:          in.Order,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if certificate != nil {
		checked, err := doccheck.CheckPDF(certificate.Reader)
		if err != nil {
			return Certification{}, err
		}
		uploaded, err := s.Media.Upload(ctx, mediaFolder, certificate.Name, media.KindRaw, checked)
		if err != nil {
			return Certification{}, err
		}
		cert.Certificate = uploaded
	}
	if image != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
		if err != nil {
			media.Cleanup(ctx, s.Media, cert.Certificate)
			return Certification{}, err
		}
		cert.Image = uploaded
	}

	if err := s.Repo.Create(ctx, cert); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

// Update merges provided fields; new files replace the owned assets. The
// borrowed reused image URL is plain text and its target is never touched.
func (s *Service) Update(ctx context.Context, id string, in Update, certificate, image *media.File) (Certification, error) {
	cert, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Certification{}, err
	}

	applyString(&cert.Title, in.Title)
	applyString(&cert.Organization, in.Organization)
	if in.IssueMonth != nil {
		cert.IssueMonth = *in.IssueMonth
	}
	if in.IssueYear != nil {
		cert.IssueYear = *in.IssueYear
	}
	applyString(&cert.CredentialID, in.CredentialID)
	applyString(&cert.CredentialURL, in.CredentialURL)
	applyString(&cert.ReusedImageURL, in.ReusedImageURL)
	if in.Order != nil {
		cert.Order = *in.Order
	}

	fe := validate.FieldErrors{}
	cert.Title = fe.Required("title", cert.Title)
	cert.Organization = fe.Required("organization", cert.Organization)
	if err := fe.OrNil(); err != nil {
		return Certification{}, err
	}

	if certificate != nil {
		checked, err := doccheck.CheckPDF(certificate.Reader)
		if err != nil {
			return Certification{}, err
		}
		media.Cleanup(ctx, s.Media, cert.Certificate)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, certificate.Name, media.KindRaw, checked)
		if err != nil {
			return Certification{}, err
		}
		cert.Certificate = uploaded
	}
	if image != nil {
		media.Cleanup(ctx, s.Media, cert.Image)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, image.Name, media.KindImage, image.Reader)
		if err != nil {
			return Certification{}, err
		}
		cert.Image = uploaded
	}

	cert.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, cert); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

// Delete removes the owned certificate and badge image best-effort and
// deletes the document. The reused image URL points at media owned elsewhere
// and is left alone.
func (s *Service) Delete(ctx context.Context, id string) error {
	cert, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, cert.Certificate, cert.Image)
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

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
