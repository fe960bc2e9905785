package feedback

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const feedbackColumns = `
id, name, email, role, company, message, rating, approved,
avatar_url, avatar_public_id, created_at, updated_at`

// List returns feedback entries matching the filter, newest first.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback`
	args := []any{}
	if f.Approved != nil {
		query += ` WHERE approved = $1`
		args = append(args, *f.Approved)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

// GetByID fetches one feedback entry.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Feedback, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id)
	fb, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Feedback{}, ErrNotFound
		}
		return Feedback{}, err
	}
	return fb, nil
}

// Create inserts a new feedback entry.
func (r *PGRepo) Create(ctx context.Context, fb Feedback) error {
	const query = `
INSERT INTO feedback (
    id, name, email, role, company, message, rating, approved,
    avatar_url, avatar_public_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		fb.ID, fb.Name, fb.Email, fb.Role, fb.Company, fb.Message, fb.Rating, fb.Approved,
		fb.Avatar.URL, fb.Avatar.PublicID, fb.CreatedAt, fb.UpdatedAt)
	return err
}

// Update overwrites a feedback entry.
func (r *PGRepo) Update(ctx context.Context, fb Feedback) error {
	const query = `
UPDATE feedback SET
    name = $2, email = $3, role = $4, company = $5, message = $6,
    rating = $7, approved = $8, avatar_url = $9, avatar_public_id = $10,
    updated_at = $11
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		fb.ID, fb.Name, fb.Email, fb.Role, fb.Company, fb.Message,
		fb.Rating, fb.Approved, fb.Avatar.URL, fb.Avatar.PublicID, fb.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a feedback entry.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (Feedback, error) {
	var fb Feedback
	if err := row.Scan(
		&fb.ID, &fb.Name, &fb.Email, &fb.Role, &fb.Company, &fb.Message,
		&fb.Rating, &fb.Approved, &fb.Avatar.URL, &fb.Avatar.PublicID,
		&fb.CreatedAt, &fb.UpdatedAt,
	); err != nil {
		return Feedback{}, err
	}
	if fb.Avatar.URL != "" {
		fb.Avatar.Kind = "image"
	}
	return fb, nil
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
