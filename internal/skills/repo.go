package skills

import "context"

// Repo defines persistence operations for skill categories and skills.
type Repo interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	// GetCategoryByName matches case-insensitively.
	GetCategoryByName(ctx context.Context, name string) (Category, error)
	CreateCategory(ctx context.Context, cat Category) error
	UpdateCategory(ctx context.Context, cat Category) error
	DeleteCategory(ctx context.Context, id string) error
	SetCategoryOrder(ctx context.Context, id string, order int) error
	CountSkillsInCategory(ctx context.Context, categoryID string) (int, error)

	// ListSkills returns all skills, or only those in categoryID if non-empty.
	ListSkills(ctx context.Context, categoryID string) ([]Skill, error)
	GetSkill(ctx context.Context, id string) (Skill, error)
	// GetSkillByName matches case-insensitively within a category.
	GetSkillByName(ctx context.Context, categoryID, name string) (Skill, error)
	CreateSkill(ctx context.Context, sk Skill) error
	UpdateSkill(ctx context.Context, sk Skill) error
	DeleteSkill(ctx context.Context, id string) error
	SetSkillOrder(ctx context.Context, id string, order int) error
}
