package experiences

import "context"

// Repo defines persistence operations for experiences.
type Repo interface {
	List(ctx context.Context) ([]Experience, error)
	GetByID(ctx context.Context, id string) (Experience, error)
	Create(ctx context.Context, e Experience) error
	Update(ctx context.Context, e Experience) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
