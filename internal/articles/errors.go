package articles

import "errors"

// ErrNotFound is returned when no article matches the requested ID.
var ErrNotFound = errors.New("article not found")
