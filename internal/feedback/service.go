package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/feedback"

// Service contains business logic for visitor feedback.
type Service struct {
	Repo  Repo
	Media media.Store
}

// SubmitInput carries the fields accepted on public submission.
type SubmitInput struct {
	Name    string
	Email   string
	Role    string
	Company string
	Message string
	Rating  int
}

// List returns all feedback entries for the admin view.
func (s *Service) List(ctx context.Context) ([]Feedback, error) {
	return s.Repo.List(ctx, Filter{})
}

// Testimonials returns approved entries only.
func (s *Service) Testimonials(ctx context.Context) ([]Feedback, error) {
	approved := true
	return s.Repo.List(ctx, Filter{Approved: &approved})
}

// Submit validates a public submission, uploads the optional avatar, then
// persists. New entries always start unapproved.
func (s *Service) Submit(ctx context.Context, in SubmitInput, avatar *media.File) (Feedback, error) {
	fe := validate.FieldErrors{}
	in.Name = fe.Required("name", in.Name)
	in.Message = fe.Required("message", in.Message)
	if in.Rating < 0 || in.Rating > 5 {
		fe.Add("rating", "must be between 0 and 5")
	}
	if err := fe.OrNil(); err != nil {
		return Feedback{}, err
	}

	now := time.Now().UTC()
	fb := Feedback{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Company:   in.Company,
		Message:   in.Message,
		Rating:    in.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if avatar != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, avatar.Name, media.KindImage, avatar.Reader)
		if err != nil {
			return Feedback{}, err
		}
		fb.Avatar = uploaded
	}

	if err := s.Repo.Create(ctx, fb); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// Update merges provided fields and replaces the avatar when a new file is
// supplied. Approval is untouched; that goes through ToggleApproved.
func (s *Service) Update(ctx context.Context, id string, in Update, avatar *media.File) (Feedback, error) {
	fb, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Feedback{}, err
	}

	applyString(&fb.Name, in.Name)
	applyString(&fb.Email, in.Email)
	applyString(&fb.Role, in.Role)
	applyString(&fb.Company, in.Company)
	applyString(&fb.Message, in.Message)
	if in.Rating != nil {
		fb.Rating = *in.Rating
	}

	fe := validate.FieldErrors{}
	fb.Name = fe.Required("name", fb.Name)
	fb.Message = fe.Required("message", fb.Message)
	if fb.Rating < 0 || fb.Rating > 5 {
		fe.Add("rating", "must be between 0 and 5")
	}
	if err := fe.OrNil(); err != nil {
		return Feedback{}, err
	}

	if avatar != nil {
		media.Cleanup(ctx, s.Media, fb.Avatar)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, avatar.Name, media.KindImage, avatar.Reader)
		if err != nil {
			return Feedback{}, err
		}
		fb.Avatar = uploaded
	}

	fb.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, fb); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// ToggleApproved flips the approval gate.
func (s *Service) ToggleApproved(ctx context.Context, id string) (Feedback, error) {
	fb, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Feedback{}, err
	}
	fb.Approved = !fb.Approved
	fb.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, fb); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// Delete removes the avatar best-effort and deletes the entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	fb, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, fb.Avatar)
	return s.Repo.Delete(ctx, id)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
