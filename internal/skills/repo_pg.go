package skills

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const categoryColumns = `id, name, display_order, created_at, updated_at`
const skillColumns = `id, category_id, name, level, icon_url, icon_public_id, display_order, created_at, updated_at`

// ListCategories returns all categories in display order.
func (r *PGRepo) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM skill_categories ORDER BY display_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Order, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

// GetCategory fetches a category by ID.
func (r *PGRepo) GetCategory(ctx context.Context, id string) (Category, error) {
	var cat Category
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM skill_categories WHERE id = $1`, id).
		Scan(&cat.ID, &cat.Name, &cat.Order, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return cat, nil
}

// GetCategoryByName fetches a category by case-insensitive name.
func (r *PGRepo) GetCategoryByName(ctx context.Context, name string) (Category, error) {
	var cat Category
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM skill_categories WHERE name_key = $1`, nameKey(name)).
		Scan(&cat.ID, &cat.Name, &cat.Order, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return cat, nil
}

// CreateCategory inserts a new category.
func (r *PGRepo) CreateCategory(ctx context.Context, cat Category) error {
	const query = `
INSERT INTO skill_categories (id, name, name_key, display_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		cat.ID, cat.Name, nameKey(cat.Name), cat.Order, cat.CreatedAt, cat.UpdatedAt)
	return err
}

// UpdateCategory overwrites a category.
func (r *PGRepo) UpdateCategory(ctx context.Context, cat Category) error {
	const query = `
UPDATE skill_categories SET name = $2, name_key = $3, display_order = $4, updated_at = $5
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		cat.ID, cat.Name, nameKey(cat.Name), cat.Order, cat.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res, ErrCategoryNotFound)
}

// DeleteCategory removes a category.
func (r *PGRepo) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrCategoryNotFound)
}

// SetCategoryOrder updates the manual sort key for a category.
func (r *PGRepo) SetCategoryOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE skill_categories SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res, ErrCategoryNotFound)
}

// CountSkillsInCategory counts skills referencing a category.
func (r *PGRepo) CountSkillsInCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM skills WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

// ListSkills returns skills, optionally restricted to one category.
func (r *PGRepo) ListSkills(ctx context.Context, categoryID string) ([]Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills`
	args := []any{}
	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

// GetSkill fetches a skill by ID.
func (r *PGRepo) GetSkill(ctx context.Context, id string) (Skill, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	sk, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return sk, nil
}

// GetSkillByName fetches a skill by case-insensitive name within a category.
func (r *PGRepo) GetSkillByName(ctx context.Context, categoryID, name string) (Skill, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE category_id = $1 AND name_key = $2`,
		categoryID, nameKey(name))
	sk, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return sk, nil
}

// CreateSkill inserts a new skill.
func (r *PGRepo) CreateSkill(ctx context.Context, sk Skill) error {
	const query = `
INSERT INTO skills (
    id, category_id, name, name_key, level, icon_url, icon_public_id,
    display_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		sk.ID, sk.CategoryID, sk.Name, nameKey(sk.Name), sk.Level,
		sk.Icon.URL, sk.Icon.PublicID, sk.Order, sk.CreatedAt, sk.UpdatedAt)
	return err
}

// UpdateSkill overwrites a skill.
func (r *PGRepo) UpdateSkill(ctx context.Context, sk Skill) error {
	const query = `
UPDATE skills SET
    category_id = $2, name = $3, name_key = $4, level = $5,
    icon_url = $6, icon_public_id = $7, display_order = $8, updated_at = $9
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		sk.ID, sk.CategoryID, sk.Name, nameKey(sk.Name), sk.Level,
		sk.Icon.URL, sk.Icon.PublicID, sk.Order, sk.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSkillNotFound)
}

// DeleteSkill removes a skill.
func (r *PGRepo) DeleteSkill(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSkillNotFound)
}

// SetSkillOrder updates the manual sort key for a skill.
func (r *PGRepo) SetSkillOrder(ctx context.Context, id string, order int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE skills SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSkillNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSkill(row rowScanner) (Skill, error) {
	var sk Skill
	if err := row.Scan(
		&sk.ID, &sk.CategoryID, &sk.Name, &sk.Level,
		&sk.Icon.URL, &sk.Icon.PublicID, &sk.Order, &sk.CreatedAt, &sk.UpdatedAt,
	); err != nil {
		return Skill{}, err
	}
	if sk.Icon.URL != "" {
		sk.Icon.Kind = "image"
	}
	return sk, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func requireRow(res sql.Result, missing error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return missing
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
