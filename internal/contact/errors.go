package contact

import "errors"

// ErrNotFound is returned when no message matches the requested ID.
var ErrNotFound = errors.New("contact message not found")
