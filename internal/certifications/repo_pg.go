package certifications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const certificationColumns = `
id, title, organization, issue_month, issue_year,
credential_id, credential_url,
certificate_url, certificate_public_id, image_url, image_public_id,
reused_image_url, display_order, created_at, updated_at`

// List returns all certifications, most recently issued first within each
// display-order bucket.
func (r *PGRepo) List(ctx context.Context) ([]Certification, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+certificationColumns+` FROM certifications
ORDER BY display_order ASC, issue_year DESC, issue_month DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Certification
	for rows.Next() {
		cert, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cert)
	}
	return out, rows.Err()
}

// GetByID fetches one certification.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Certification, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	cert, err := scanCertification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Certification{}, ErrNotFound
		}
		return Certification{}, err
	}
	return cert, nil
}

// Create inserts a new certification.
func (r *PGRepo) Create(ctx context.Context, cert Certification) error {
	const query = `
INSERT INTO certifications (
    id, title, organization, issue_month, issue_year,
    credential_id, credential_url,
    certificate_url, certificate_public_id, image_url, image_public_id,
    reused_image_url, display_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.DB.ExecContext(ctx, query,
		cert.ID, cert.Title, cert.Organization, cert.IssueMonth, cert.IssueYear,
		cert.CredentialID, cert.CredentialURL,
		cert.Certificate.URL, cert.Certificate.PublicID, cert.Image.URL, cert.Image.PublicID,
		cert.ReusedImageURL, cert.Order, cert.CreatedAt, cert.UpdatedAt)
	return err
}

// Update overwrites a certification.
func (r *PGRepo) Update(ctx context.Context, cert Certification) error {
	const query = `
UPDATE certifications SET
    title = $2, organization = $3, issue_month = $4, issue_year = $5,
    credential_id = $6, credential_url = $7,
    certificate_url = $8, certificate_public_id = $9,
    image_url = $10, image_public_id = $11,
    reused_image_url = $12, display_order = $13, updated_at = $14
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		cert.ID, cert.Title, cert.Organization, cert.IssueMonth, cert.IssueYear,
		cert.CredentialID, cert.CredentialURL,
		cert.Certificate.URL, cert.Certificate.PublicID,
		cert.Image.URL, cert.Image.PublicID,
		cert.ReusedImageURL, cert.Order, cert.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a certification.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE certifications SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertification(row rowScanner) (Certification, error) {
	var cert Certification
	if err := row.Scan(
		&cert.ID, &cert.Title, &cert.Organization, &cert.IssueMonth, &cert.IssueYear,
		&cert.CredentialID, &cert.CredentialURL,
		&cert.Certificate.URL, &cert.Certificate.PublicID,
		&cert.Image.URL, &cert.Image.PublicID,
		&cert.ReusedImageURL, &cert.Order, &cert.CreatedAt, &cert.UpdatedAt,
	); err != nil {
		return Certification{}, err
	}
	if cert.Certificate.URL != "" {
		cert.Certificate.Kind = "raw"
	}
	if cert.Image.URL != "" {
		cert.Image.Kind = "image"
	}
	return cert, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
