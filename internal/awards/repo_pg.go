package awards

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const awardColumns = `
id, title, issuer, description, year, associated_type, associated_id,
image_url, image_public_id, display_order, created_at, updated_at`

// List returns all awards, most recent first within each display-order
// bucket.
func (r *PGRepo) List(ctx context.Context) ([]Award, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+awardColumns+` FROM awards
ORDER BY display_order ASC, year DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Award
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches one award.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Award, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+awardColumns+` FROM awards WHERE id = $1`, id)
	a, err := scanAward(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Award{}, ErrNotFound
		}
		return Award{}, err
	}
	return a, nil
}

// Create inserts a new award.
func (r *PGRepo) Create(ctx context.Context, a Award) error {
	const query = `
INSERT INTO awards (
    id, title, issuer, description, year, associated_type, associated_id,
    image_url, image_public_id, display_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Issuer, a.Description, a.Year, a.AssociatedType, a.AssociatedID,
		a.Image.URL, a.Image.PublicID, a.Order, a.CreatedAt, a.UpdatedAt)
	return err
}

// Update overwrites an award.
func (r *PGRepo) Update(ctx context.Context, a Award) error {
	const query = `
UPDATE awards SET
    title = $2, issuer = $3, description = $4, year = $5,
    associated_type = $6, associated_id = $7,
    image_url = $8, image_public_id = $9, display_order = $10, updated_at = $11
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Issuer, a.Description, a.Year,
		a.AssociatedType, a.AssociatedID,
		a.Image.URL, a.Image.PublicID, a.Order, a.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an award.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE awards SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAward(row rowScanner) (Award, error) {
	var a Award
	if err := row.Scan(
		&a.ID, &a.Title, &a.Issuer, &a.Description, &a.Year,
		&a.AssociatedType, &a.AssociatedID,
		&a.Image.URL, &a.Image.PublicID, &a.Order, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return Award{}, err
	}
	if a.Image.URL != "" {
		a.Image.Kind = "image"
	}
	return a, nil
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
