package skills

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const mediaFolder = "portfolio/skills"

// Service contains business logic for skill categories and skills.
type Service struct {
	Repo  Repo
	Media media.Store
}

// SkillInput carries the fields accepted when creating a skill.
type SkillInput struct {
	Name       string
	CategoryID string
	Level      int
	Order      int
}

// OrderPair is one (id, order) assignment in a reorder request.
type OrderPair struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// ListGrouped returns every category with its skills nested, in display order.
func (s *Service) ListGrouped(ctx context.Context) ([]CategoryWithSkills, error) {
	cats, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.ListSkills(ctx, "")
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]Skill, len(cats))
	for _, sk := range all {
		byCategory[sk.CategoryID] = append(byCategory[sk.CategoryID], sk)
	}

	out := make([]CategoryWithSkills, 0, len(cats))
	for _, cat := range cats {
		skillsInCat := byCategory[cat.ID]
		if skillsInCat == nil {
			skillsInCat = []Skill{}
		}
		out = append(out, CategoryWithSkills{Category: cat, Skills: skillsInCat})
	}
	return out, nil
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.Repo.ListCategories(ctx)
}

// ListByCategory returns the skills of one existing category.
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]Skill, error) {
	if _, err := s.Repo.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.Repo.ListSkills(ctx, categoryID)
}

// GetSkill returns one skill or ErrSkillNotFound.
func (s *Service) GetSkill(ctx context.Context, id string) (Skill, error) {
	return s.Repo.GetSkill(ctx, id)
}

// CreateCategory validates the unique-name constraint and persists.
func (s *Service) CreateCategory(ctx context.Context, name string, order int) (Category, error) {
	fe := validate.FieldErrors{}
	name = fe.Required("name", name)
	if err := fe.OrNil(); err != nil {
		return Category{}, err
	}

	if _, err := s.Repo.GetCategoryByName(ctx, name); err == nil {
		return Category{}, ErrDuplicateName
	} else if !errors.Is(err, ErrCategoryNotFound) {
		return Category{}, err
	}

	now := time.Now().UTC()
	cat := Category{
		ID:        uuid.NewString(),
		Name:      name,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateCategory(ctx, cat); err != nil {
		return Category{}, err
	}
	return cat, nil
}

// UpdateCategory merges provided fields, re-checking the unique name.
func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryUpdate) (Category, error) {
	cat, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return Category{}, err
	}

	if in.Name != nil {
		fe := validate.FieldErrors{}
		name := fe.Required("name", *in.Name)
		if err := fe.OrNil(); err != nil {
			return Category{}, err
		}
		if existing, err := s.Repo.GetCategoryByName(ctx, name); err == nil {
			if existing.ID != id {
				return Category{}, ErrDuplicateName
			}
		} else if !errors.Is(err, ErrCategoryNotFound) {
			return Category{}, err
		}
		cat.Name = name
	}
	if in.Order != nil {
		cat.Order = *in.Order
	}

	cat.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpdateCategory(ctx, cat); err != nil {
		return Category{}, err
	}
	return cat, nil
}

// DeleteCategory refuses to delete a category that still has skills.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.Repo.GetCategory(ctx, id); err != nil {
		return err
	}
	count, err := s.Repo.CountSkillsInCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.Repo.DeleteCategory(ctx, id)
}

// CreateSkill validates the category reference and per-category unique name,
// uploads the optional icon, then persists.
func (s *Service) CreateSkill(ctx context.Context, in SkillInput, icon *media.File) (Skill, error) {
	fe := validate.FieldErrors{}
	in.Name = fe.Required("name", in.Name)
	in.CategoryID = fe.Required("categoryId", in.CategoryID)
	if err := fe.OrNil(); err != nil {
		return Skill{}, err
	}

	if _, err := s.Repo.GetCategory(ctx, in.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return Skill{}, validate.FieldErrors{"categoryId": "unknown category"}
		}
		return Skill{}, err
	}
	if _, err := s.Repo.GetSkillByName(ctx, in.CategoryID, in.Name); err == nil {
		return Skill{}, ErrDuplicateName
	} else if !errors.Is(err, ErrSkillNotFound) {
		return Skill{}, err
	}

	var asset media.Asset
	if icon != nil {
		uploaded, err := s.Media.Upload(ctx, mediaFolder, icon.Name, media.KindImage, icon.Reader)
		if err != nil {
			return Skill{}, err
		}
		asset = uploaded
	}

	now := time.Now().UTC()
	sk := Skill{
		ID:         uuid.NewString(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Level:      in.Level,
		Icon:       asset,
		Order:      in.Order,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.CreateSkill(ctx, sk); err != nil {
		return Skill{}, err
	}
	return sk, nil
}

// UpdateSkill merges provided fields; a new icon replaces the old asset.
func (s *Service) UpdateSkill(ctx context.Context, id string, in SkillUpdate, icon *media.File) (Skill, error) {
	sk, err := s.Repo.GetSkill(ctx, id)
	if err != nil {
		return Skill{}, err
	}

	if in.CategoryID != nil && *in.CategoryID != sk.CategoryID {
		if _, err := s.Repo.GetCategory(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return Skill{}, validate.FieldErrors{"categoryId": "unknown category"}
			}
			return Skill{}, err
		}
		sk.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		fe := validate.FieldErrors{}
		name := fe.Required("name", *in.Name)
		if err := fe.OrNil(); err != nil {
			return Skill{}, err
		}
		sk.Name = name
	}
	if in.Name != nil || in.CategoryID != nil {
		if existing, err := s.Repo.GetSkillByName(ctx, sk.CategoryID, sk.Name); err == nil {
			if existing.ID != id {
				return Skill{}, ErrDuplicateName
			}
		} else if !errors.Is(err, ErrSkillNotFound) {
			return Skill{}, err
		}
	}
	if in.Level != nil {
		sk.Level = *in.Level
	}
	if in.Order != nil {
		sk.Order = *in.Order
	}

	if icon != nil {
		media.Cleanup(ctx, s.Media, sk.Icon)
		uploaded, err := s.Media.Upload(ctx, mediaFolder, icon.Name, media.KindImage, icon.Reader)
		if err != nil {
			return Skill{}, err
		}
		sk.Icon = uploaded
	}

	sk.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpdateSkill(ctx, sk); err != nil {
		return Skill{}, err
	}
	return sk, nil
}

// DeleteSkill removes the owned icon best-effort and deletes the document.
func (s *Service) DeleteSkill(ctx context.Context, id string) error {
	sk, err := s.Repo.GetSkill(ctx, id)
	if err != nil {
		return err
	}
	media.Cleanup(ctx, s.Media, sk.Icon)
	return s.Repo.DeleteSkill(ctx, id)
}

// ReorderSkills applies each (id, order) pair independently.
func (s *Service) ReorderSkills(ctx context.Context, pairs []OrderPair) map[string]string {
	failed := map[string]string{}
	for _, pair := range pairs {
		if err := s.Repo.SetSkillOrder(ctx, pair.ID, pair.Order); err != nil {
			failed[pair.ID] = err.Error()
		}
	}
	return failed
}

// ReorderCategories applies each (id, order) pair independently.
func (s *Service) ReorderCategories(ctx context.Context, pairs []OrderPair) map[string]string {
	failed := map[string]string{}
	for _, pair := range pairs {
		if err := s.Repo.SetCategoryOrder(ctx, pair.ID, pair.Order); err != nil {
			failed[pair.ID] = err.Error()
		}
	}
	return failed
}
