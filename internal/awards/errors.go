package awards

import "errors"

// ErrNotFound is returned when no award matches the requested ID.
var ErrNotFound = errors.New("award not found")
