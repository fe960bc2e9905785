package feedback

import "errors"

// ErrNotFound is returned when no feedback entry matches the requested ID.
var ErrNotFound = errors.New("feedback not found")
