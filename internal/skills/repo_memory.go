package skills

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu         sync.RWMutex
	categories map[string]Category
	skills     map[string]Skill
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		categories: make(map[string]Category),
		skills:     make(map[string]Skill),
	}
}

// ListCategories returns all categories in display order.
func (r *MemoryRepo) ListCategories(ctx context.Context) ([]Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categories))
	for _, cat := range r.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetCategory fetches a category by ID.
func (r *MemoryRepo) GetCategory(ctx context.Context, id string) (Category, error) {
	if err := ctx.Err(); err != nil {
		return Category{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.categories[id]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return cat, nil
}

// GetCategoryByName fetches a category by case-insensitive name.
func (r *MemoryRepo) GetCategoryByName(ctx context.Context, name string) (Category, error) {
	if err := ctx.Err(); err != nil {
		return Category{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cat := range r.categories {
		if strings.EqualFold(strings.TrimSpace(name), cat.Name) {
			return cat, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

// CreateCategory stores a new category.
func (r *MemoryRepo) CreateCategory(ctx context.Context, cat Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[cat.ID] = cat
	return nil
}

// UpdateCategory overwrites a category.
func (r *MemoryRepo) UpdateCategory(ctx context.Context, cat Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[cat.ID]; !ok {
		return ErrCategoryNotFound
	}
	r.categories[cat.ID] = cat
	return nil
}

// DeleteCategory removes a category.
func (r *MemoryRepo) DeleteCategory(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// SetCategoryOrder updates the manual sort key for a category.
func (r *MemoryRepo) SetCategoryOrder(ctx context.Context, id string, order int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cat, ok := r.categories[id]
	if !ok {
		return ErrCategoryNotFound
	}
	cat.Order = order
	r.categories[id] = cat
	return nil
}

// CountSkillsInCategory counts skills referencing a category.
func (r *MemoryRepo) CountSkillsInCategory(ctx context.Context, categoryID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, sk := range r.skills {
		if sk.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ListSkills returns skills, optionally restricted to one category.
func (r *MemoryRepo) ListSkills(ctx context.Context, categoryID string) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Skill, 0, len(r.skills))
	for _, sk := range r.skills {
		if categoryID != "" && sk.CategoryID != categoryID {
			continue
		}
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetSkill fetches a skill by ID.
func (r *MemoryRepo) GetSkill(ctx context.Context, id string) (Skill, error) {
	if err := ctx.Err(); err != nil {
		return Skill{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sk, ok := r.skills[id]
	if !ok {
		return Skill{}, ErrSkillNotFound
	}
	return sk, nil
}

// GetSkillByName fetches a skill by case-insensitive name within a category.
func (r *MemoryRepo) GetSkillByName(ctx context.Context, categoryID, name string) (Skill, error) {
	if err := ctx.Err(); err != nil {
		return Skill{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sk := range r.skills {
		if sk.CategoryID == categoryID && strings.EqualFold(strings.TrimSpace(name), sk.Name) {
			return sk, nil
		}
	}
	return Skill{}, ErrSkillNotFound
}

// CreateSkill stores a new skill.
func (r *MemoryRepo) CreateSkill(ctx context.Context, sk Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skills[sk.ID] = sk
	return nil
}

// UpdateSkill overwrites a skill.
func (r *MemoryRepo) UpdateSkill(ctx context.Context, sk Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[sk.ID]; !ok {
		return ErrSkillNotFound
	}
	r.skills[sk.ID] = sk
	return nil
}

// DeleteSkill removes a skill.
func (r *MemoryRepo) DeleteSkill(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[id]; !ok {
		return ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

// SetSkillOrder updates the manual sort key for a skill.
func (r *MemoryRepo) SetSkillOrder(ctx context.Context, id string, order int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sk, ok := r.skills[id]
	if !ok {
		return ErrSkillNotFound
	}
	sk.Order = order
	r.skills[id] = sk
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
