package certifications

import "errors"

// ErrNotFound is returned when no certification matches the requested ID.
var ErrNotFound = errors.New("certification not found")
