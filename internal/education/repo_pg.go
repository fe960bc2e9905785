package education

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const educationColumns = `
id, institution, degree, field_of_study, grade, description,
start_year, completion_year, status,
logo_url, logo_public_id, display_order, created_at, updated_at`

// List returns all education entries, most recent first within each
// display-order bucket.
func (r *PGRepo) List(ctx context.Context) ([]Education, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+educationColumns+` FROM education
ORDER BY display_order ASC, start_year DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches one education entry.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Education, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	e, err := scanEducation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Education{}, ErrNotFound
		}
		return Education{}, err
	}
	return e, nil
}

// Create inserts a new education entry.
func (r *PGRepo) Create(ctx context.Context, e Education) error {
	const query = `
INSERT INTO education (
    id, institution, degree, field_of_study, grade, description,
    start_year, completion_year, status,
    logo_url, logo_public_id, display_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.Grade, e.Description,
		e.StartYear, e.CompletionYear, e.Status,
		e.Logo.URL, e.Logo.PublicID, e.Order, e.CreatedAt, e.UpdatedAt)
	return err
}

// Update overwrites an education entry.
func (r *PGRepo) Update(ctx context.Context, e Education) error {
	const query = `
UPDATE education SET
    institution = $2, degree = $3, field_of_study = $4, grade = $5,
    description = $6, start_year = $7, completion_year = $8, status = $9,
    logo_url = $10, logo_public_id = $11, display_order = $12, updated_at = $13
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.Grade,
		e.Description, e.StartYear, e.CompletionYear, e.Status,
		e.Logo.URL, e.Logo.PublicID, e.Order, e.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an education entry.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE education SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEducation(row rowScanner) (Education, error) {
	var e Education
	var completionYear sql.NullInt64
	if err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.Grade, &e.Description,
		&e.StartYear, &completionYear, &e.Status,
		&e.Logo.URL, &e.Logo.PublicID, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return Education{}, err
	}
	if completionYear.Valid {
		v := int(completionYear.Int64)
		e.CompletionYear = &v
	}
	if e.Logo.URL != "" {
		e.Logo.Kind = "image"
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
