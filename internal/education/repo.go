package education

import "context"

// Repo defines persistence operations for education entries.
type Repo interface {
	List(ctx context.Context) ([]Education, error)
	GetByID(ctx context.Context, id string) (Education, error)
	Create(ctx context.Context, e Education) error
	Update(ctx context.Context, e Education) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
