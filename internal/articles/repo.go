package articles

import "context"

// Repo defines persistence operations for articles.
type Repo interface {
	List(ctx context.Context, f Filter) ([]Article, error)
	GetByID(ctx context.Context, id string) (Article, error)
	Create(ctx context.Context, a Article) error
	Update(ctx context.Context, a Article) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
