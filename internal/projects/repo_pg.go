package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const projectColumns = `
id, title, description, technologies, live_url, repo_url,
image_url, image_public_id, featured, show_on_home, display_order,
created_at, updated_at`

// List returns projects matching the filter in display order.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []any{}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += ` AND featured = $1`
	}
	if f.ShowOnHome != nil {
		args = append(args, *f.ShowOnHome)
		if len(args) == 1 {
			query += ` AND show_on_home = $1`
		} else {
			query += ` AND show_on_home = $2`
		}
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a project by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Project, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

// Create inserts a new project.
func (r *PGRepo) Create(ctx context.Context, p Project) error {
	techJSON, err := json.Marshal(p.Technologies)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO projects (
    id, title, description, technologies, live_url, repo_url,
    image_url, image_public_id, featured, show_on_home, display_order,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, techJSON, p.LiveURL, p.RepoURL,
		p.Image.URL, p.Image.PublicID, p.Featured, p.ShowOnHome, p.Order,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// Update overwrites a project document.
func (r *PGRepo) Update(ctx context.Context, p Project) error {
	techJSON, err := json.Marshal(p.Technologies)
	if err != nil {
		return err
	}
	const query = `
UPDATE projects SET
    title = $2, description = $3, technologies = $4, live_url = $5,
    repo_url = $6, image_url = $7, image_public_id = $8, featured = $9,
    show_on_home = $10, display_order = $11, updated_at = $12
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, techJSON, p.LiveURL,
		p.RepoURL, p.Image.URL, p.Image.PublicID, p.Featured,
		p.ShowOnHome, p.Order, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a project document.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key for a single project.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE projects SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var techJSON []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &techJSON, &p.LiveURL, &p.RepoURL,
		&p.Image.URL, &p.Image.PublicID, &p.Featured, &p.ShowOnHome, &p.Order,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return Project{}, err
	}
	if len(techJSON) > 0 {
		if err := json.Unmarshal(techJSON, &p.Technologies); err != nil {
			return Project{}, err
		}
	}
	if p.Image.URL != "" {
		p.Image.Kind = "image"
	}
	return p, nil
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
