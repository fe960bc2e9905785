package certifications

import "context"

// Repo defines persistence operations for certifications.
type Repo interface {
	List(ctx context.Context) ([]Certification, error)
	GetByID(ctx context.Context, id string) (Certification, error)
	Create(ctx context.Context, cert Certification) error
	Update(ctx context.Context, cert Certification) error
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, order int) error
}
