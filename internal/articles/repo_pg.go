package articles

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

const articleColumns = `
id, title, summary, content, tags, status, published_at, pinned,
external_url, cover_url, cover_public_id, display_order,
created_at, updated_at`

// List returns articles matching the filter, pinned pieces first, then
// display order, then publication recency.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{}
	if f.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	query += ` ORDER BY pinned DESC, display_order ASC, published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches one article.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Article, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	return a, nil
}

// Create inserts a new article.
func (r *PGRepo) Create(ctx context.Context, a Article) error {
	tagsJSON, err := json.Marshal(a.Tags)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO articles (
    id, title, summary, content, tags, status, published_at, pinned,
    external_url, cover_url, cover_public_id, display_order,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Summary, a.Content, tagsJSON, a.Status, a.PublishedAt, a.Pinned,
		a.ExternalURL, a.Cover.URL, a.Cover.PublicID, a.Order,
		a.CreatedAt, a.UpdatedAt)
	return err
}

// Update overwrites an article.
func (r *PGRepo) Update(ctx context.Context, a Article) error {
	tagsJSON, err := json.Marshal(a.Tags)
	if err != nil {
		return err
	}
	const query = `
UPDATE articles SET
    title = $2, summary = $3, content = $4, tags = $5, status = $6,
    published_at = $7, pinned = $8, external_url = $9,
    cover_url = $10, cover_public_id = $11, display_order = $12, updated_at = $13
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Summary, a.Content, tagsJSON, a.Status,
		a.PublishedAt, a.Pinned, a.ExternalURL,
		a.Cover.URL, a.Cover.PublicID, a.Order, a.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an article.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOrder updates the manual sort key.
func (r *PGRepo) SetOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE articles SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (Article, error) {
	var a Article
	var tagsJSON []byte
	var publishedAt sql.NullTime
	if err := row.Scan(
		&a.ID, &a.Title, &a.Summary, &a.Content, &tagsJSON, &a.Status, &publishedAt, &a.Pinned,
		&a.ExternalURL, &a.Cover.URL, &a.Cover.PublicID, &a.Order,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return Article{}, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &a.Tags); err != nil {
			return Article{}, err
		}
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		a.PublishedAt = &t
	}
	if a.Cover.URL != "" {
		a.Cover.Kind = "image"
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
