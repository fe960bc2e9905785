package profile

import "errors"

// ErrNotFound is returned by repositories when no profile row exists yet.
var ErrNotFound = errors.New("profile not found")

// ErrUnknownSlot is returned for an asset slot name the profile does not have.
var ErrUnknownSlot = errors.New("unknown profile asset slot")
