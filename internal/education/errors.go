package education

import "errors"

// ErrNotFound is returned when no education entry matches the requested ID.
var ErrNotFound = errors.New("education entry not found")
