package profile

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/shared/doccheck"
	"portfolio-backend/internal/shared/storage/media"
)

const mediaFolder = "portfolio/profile"

// Service contains business logic for the singleton profile.
type Service struct {
	Repo  Repo
	Media media.Store
}

// GetOrCreate returns the profile, creating an empty one on first read so
// callers never see a missing document.
func (s *Service) GetOrCreate(ctx context.Context) (Profile, error) {
	p, err := s.Repo.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	now := time.Now().UTC()
	p = Profile{ID: singletonID, CreatedAt: now, UpdatedAt: now}
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Update merges the provided text fields into the profile.
func (s *Service) Update(ctx context.Context, in Update) (Profile, error) {
	p, err := s.GetOrCreate(ctx)
	if err != nil {
		return Profile{}, err
	}

	applyString(&p.FullName, in.FullName)
	applyString(&p.Title, in.Title)
	applyString(&p.Tagline, in.Tagline)
	applyString(&p.Bio, in.Bio)
	applyString(&p.Email, in.Email)
	applyString(&p.Phone, in.Phone)
	applyString(&p.Location, in.Location)
	applyString(&p.GithubURL, in.GithubURL)
	applyString(&p.LinkedinURL, in.LinkedinURL)
	applyString(&p.TwitterURL, in.TwitterURL)

	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// UploadAsset replaces the asset in one slot: the previous asset is removed
// best-effort, the new file is uploaded, and only then is the document
// updated. Resumes must parse as PDF.
func (s *Service) UploadAsset(ctx context.Context, slot AssetSlot, file *media.File) (Profile, error) {
	p, err := s.GetOrCreate(ctx)
	if err != nil {
		return Profile{}, err
	}
	target, err := slotAsset(&p, slot)
	if err != nil {
		return Profile{}, err
	}

	kind := media.KindImage
	reader := file.Reader
	if slot == SlotResume {
		kind = media.KindRaw
		checked, err := doccheck.CheckPDF(file.Reader)
		if err != nil {
			return Profile{}, err
		}
		reader = checked
	}

	media.Cleanup(ctx, s.Media, *target)
	uploaded, err := s.Media.Upload(ctx, mediaFolder, file.Name, kind, reader)
	if err != nil {
		return Profile{}, err
	}

	*target = uploaded
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// RemoveAsset clears one slot, removing the stored object best-effort.
func (s *Service) RemoveAsset(ctx context.Context, slot AssetSlot) (Profile, error) {
	p, err := s.GetOrCreate(ctx)
	if err != nil {
		return Profile{}, err
	}
	target, err := slotAsset(&p, slot)
	if err != nil {
		return Profile{}, err
	}

	media.Cleanup(ctx, s.Media, *target)
	*target = media.Asset{}
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func slotAsset(p *Profile, slot AssetSlot) (*media.Asset, error) {
	switch slot {
	case SlotImage:
		return &p.Image, nil
	case SlotResume:
		return &p.Resume, nil
	case SlotAboutImage:
		return &p.AboutImage, nil
	case SlotLogo:
		return &p.Logo, nil
	default:
		return nil, ErrUnknownSlot
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
