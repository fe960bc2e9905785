package experiences

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const experienceColumns = `
id, company, role, location, description,
start_month, start_year, end_month, end_year, status,
logo_url, logo_public_id, offer_letter_url, offer_letter_public_id,
certificate_url, certificate_public_id,
display_order, created_at, updated_at`

// List returns all experiences, most recent engagements first within each
// display-order bucket.
func (r *PGRepo) List(ctx context.Context) ([]Experience, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experiences
ORDER BY display_order ASC, start_year DESC, start_month DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches one experience.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Experience, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)
	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Experience{}, ErrNotFound
		}
		return Experience{}, err
	}
	return e, nil
}

// Create inserts a new experience.
func (r *PGRepo) Create(ctx context.Context, e Experience) error {
	const query = `
INSERT INTO experiences (
    id, company, role, location, description,
    start_month, start_year, end_month, end_year, status,
    logo_url, logo_public_id, offer_letter_url, offer_letter_public_id,
    certificate_url, certificate_public_id,
    display_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Company, e.Role, e.Location, e.Description,
		e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.Status,
		e.Logo.URL, e.Logo.PublicID, e.OfferLetter.URL, e.OfferLetter.PublicID,
		e.Certificate.URL, e.Certificate.PublicID,
		e.Order, e.CreatedAt, e.UpdatedAt)
	return err
}

// Update overwrites an experience.
func (r *PGRepo) Update(ctx context.Context, e Experience) error {
	const query = `
UPDATE experiences SET
    company = $2, role = $3, location = $4, description = $5,
    start_month = $6, start_year = $7, end_month = $8, end_year = $9, status = $10,
    logo_url = $11, logo_public_id = $12,
    offer_letter_url = $13, offer_letter_public_id = $14,
    certificate_url = $15, certificate_public_id = $16,
    display_order = $17, updated_at = $18
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Company, e.Role, e.Location, e.Description,
		e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.Status,
		e.Logo.URL, e.Logo.PublicID, e.OfferLetter.URL, e.OfferLetter.PublicID,
		e.Certificate.URL, e.Certificate.PublicID,
		e.Order, e.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an experience.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE experiences SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (Experience, error) {
	var e Experience
	var endMonth, endYear sql.NullInt64
	if err := row.Scan(
		&e.ID, &e.Company, &e.Role, &e.Location, &e.Description,
		&e.StartMonth, &e.StartYear, &endMonth, &endYear, &e.Status,
		&e.Logo.URL, &e.Logo.PublicID, &e.OfferLetter.URL, &e.OfferLetter.PublicID,
		&e.Certificate.URL, &e.Certificate.PublicID,
		&e.Order, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return Experience{}, err
	}
	if endMonth.Valid {
		v := int(endMonth.Int64)
		e.EndMonth = &v
	}
	if endYear.Valid {
		v := int(endYear.Int64)
		e.EndYear = &v
	}
	if e.Logo.URL != "" {
		e.Logo.Kind = "image"
	}
	if e.OfferLetter.URL != "" {
		e.OfferLetter.Kind = "raw"
	}
	if e.Certificate.URL != "" {
		e.Certificate.Kind = "raw"
	}
	return e, nil
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
