package experiences

import "errors"

// ErrNotFound is returned when no experience matches the requested ID.
var ErrNotFound = errors.New("experience not found")

// ErrUnknownSlot is returned for a document slot the entry does not have.
var ErrUnknownSlot = errors.New("unknown experience document slot")
