package projects

import "context"

// Repo defines persistence operations for projects.
type Repo interface {
	List(ctx context.Context, f Filter) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, p Project) error
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
