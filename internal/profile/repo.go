package profile

import "context"

// Repo defines persistence for the singleton profile document.
type Repo interface {
	// Get returns the profile row, or ErrNotFound when none exists.
	Get(ctx context.Context) (Profile, error)
	// Upsert inserts the row if missing, otherwise overwrites it.
	Upsert(ctx context.Context, p Profile) error
}
