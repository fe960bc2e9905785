package profile

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `
id, full_name, title, tagline, bio, email, phone, location,
github_url, linkedin_url, twitter_url,
image_url, image_public_id, resume_url, resume_public_id,
about_image_url, about_image_public_id, logo_url, logo_public_id,
created_at, updated_at`

// Get returns the single profile row.
func (r *PGRepo) Get(ctx context.Context) (Profile, error) {
	var p Profile
	err := r.DB.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profile LIMIT 1`).Scan(
		&p.ID, &p.FullName, &p.Title, &p.Tagline, &p.Bio, &p.Email, &p.Phone, &p.Location,
		&p.GithubURL, &p.LinkedinURL, &p.TwitterURL,
		&p.Image.URL, &p.Image.PublicID, &p.Resume.URL, &p.Resume.PublicID,
		&p.AboutImage.URL, &p.AboutImage.PublicID, &p.Logo.URL, &p.Logo.PublicID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	setKinds(&p)
	return p, nil
}

// Upsert writes the profile row, inserting on first write.
func (r *PGRepo) Upsert(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profile (
    id, full_name, title, tagline, bio, email, phone, location,
    github_url, linkedin_url, twitter_url,
    image_url, image_public_id, resume_url, resume_public_id,
    about_image_url, about_image_public_id, logo_url, logo_public_id,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
ON CONFLICT (id) DO UPDATE SET
    full_name = EXCLUDED.full_name, title = EXCLUDED.title,
    tagline = EXCLUDED.tagline, bio = EXCLUDED.bio,
    email = EXCLUDED.email, phone = EXCLUDED.phone, location = EXCLUDED.location,
    github_url = EXCLUDED.github_url, linkedin_url = EXCLUDED.linkedin_url,
    twitter_url = EXCLUDED.twitter_url,
    image_url = EXCLUDED.image_url, image_public_id = EXCLUDED.image_public_id,
    resume_url = EXCLUDED.resume_url, resume_public_id = EXCLUDED.resume_public_id,
    about_image_url = EXCLUDED.about_image_url, about_image_public_id = EXCLUDED.about_image_public_id,
    logo_url = EXCLUDED.logo_url, logo_public_id = EXCLUDED.logo_public_id,
    updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.FullName, p.Title, p.Tagline, p.Bio, p.Email, p.Phone, p.Location,
		p.GithubURL, p.LinkedinURL, p.TwitterURL,
		p.Image.URL, p.Image.PublicID, p.Resume.URL, p.Resume.PublicID,
		p.AboutImage.URL, p.AboutImage.PublicID, p.Logo.URL, p.Logo.PublicID,
		p.CreatedAt, p.UpdatedAt)
	return err
}

func setKinds(p *Profile) {
	if p.Image.URL != "" {
		p.Image.Kind = "image"
	}
	if p.Resume.URL != "" {
		p.Resume.Kind = "raw"
	}
	if p.AboutImage.URL != "" {
		p.AboutImage.Kind = "image"
	}
	if p.Logo.URL != "" {
		p.Logo.Kind = "image"
	}
}

var _ Repo = (*PGRepo)(nil)
