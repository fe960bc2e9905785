package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/util"
)

// Store implements the media store on the local filesystem, for dev and
// tests. The relative file path doubles as the asset public ID.
type Store struct {
	baseDir       string
	publicBaseURL string
}

// New creates a local media store rooted at baseDir. Served URLs are
// publicBaseURL + "/" + publicID.
func New(baseDir, publicBaseURL string) media.Store {
	return &Store{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes the reader to disk under the given folder.
func (s *Store) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return media.Asset{}, fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return media.Asset{}, err
	}

	publicID := path.Join(strings.Trim(folder, "/"), fmt.Sprintf("%s_%s", randomID(), sanitizedName))

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(publicID))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return media.Asset{}, fmt.Errorf("%w: mkdir: %v", media.ErrUpstream, err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		metrics.IncMediaUploadFailure()
		return media.Asset{}, fmt.Errorf("%w: open file: %v", media.ErrUpstream, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		metrics.IncMediaUploadFailure()
		return media.Asset{}, fmt.Errorf("%w: write body: %v", media.ErrUpstream, err)
	}
	metrics.IncMediaUpload()

	return media.Asset{
		URL:      s.publicBaseURL + "/" + publicID,
		PublicID: publicID,
		Kind:     kind,
	}, nil
}

// Remove deletes the file identified by the public ID. Removing an already
// absent asset is not an error.
func (s *Store) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean := filepath.Clean(filepath.FromSlash(publicID))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid public id")
	}

	fullPath := filepath.Join(s.baseDir, clean)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove: %v", media.ErrUpstream, err)
	}
	return nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ media.Store = (*Store)(nil)
