package media

import (
	"context"
	"errors"
	"io"
)

// Kind tags the resource class of a stored asset. Removal must be issued with
// the same kind the asset was uploaded under.
type Kind string

const (
	KindImage Kind = "image"
	KindRaw   Kind = "raw"
)

// ErrUpstream wraps failures talking to the media host.
var ErrUpstream = errors.New("media store error")

// Asset is a reference to a remotely hosted binary. PublicID is the store's
// handle for later deletion; URL is publicly servable.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Kind     Kind   `json:"kind,omitempty"`
}

// Empty reports whether the asset references nothing.
func (a Asset) Empty() bool {
	return a.URL == "" && a.PublicID == ""
}

// Paired reports the url/publicId pairing invariant: a non-empty URL must
// carry a PublicID so the asset can be deleted later.
func (a Asset) Paired() bool {
	if a.URL == "" {
		return a.PublicID == ""
	}
	return a.PublicID != ""
}

// File is an upload payload handed from the HTTP layer to a service.
type File struct {
	Name   string
	Reader io.Reader
}

// Store is the media host adapter. Upload pushes bytes under a folder and
// returns the hosted asset; Remove deletes by public ID and kind.
type Store interface {
	Upload(ctx context.Context, folder, fileName string, kind Kind, r io.Reader) (Asset, error)
	Remove(ctx context.Context, publicID string, kind Kind) error
}
