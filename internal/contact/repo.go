package contact

import "context"

// Repo defines persistence operations for contact messages.
type Repo interface {
	List(ctx context.Context) ([]Message, error)
	GetByID(ctx context.Context, id string) (Message, error)
	Create(ctx context.Context, m Message) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int, error)
}
