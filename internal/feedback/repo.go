package feedback

import "context"

// Repo defines persistence operations for feedback.
type Repo interface {
	List(ctx context.Context, f Filter) ([]Feedback, error)
	GetByID(ctx context.Context, id string) (Feedback, error)
	Create(ctx context.Context, fb Feedback) error
	Update(ctx context.Context, fb Feedback) error
	Delete(ctx context.Context, id string) error
}
