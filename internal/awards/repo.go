package awards

import "context"

// Repo defines persistence operations for awards.
type Repo interface {
	List(ctx context.Context) ([]Award, error)
	GetByID(ctx context.Context, id string) (Award, error)
	Create(ctx context.Context, a Award) error
	Update(ctx context.Context, a Award) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
