package s3

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/util"
)

// Store implements the media store on Amazon S3. The object key doubles as
// the asset public ID.
type Store struct {
	client        *s3.Client
	bucket        string
	prefix        string
	region        string
	publicBaseURL string
}

// New creates an S3-backed media store.
func New(ctx context.Context, region, bucket, prefix, publicBaseURL string) (media.Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		prefix:        strings.Trim(strings.TrimSpace(prefix), "/"),
		region:        region,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}, nil
}

// Upload pushes the reader contents under the given folder and returns the
// hosted asset.
func (s *Store) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return media.Asset{}, fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return media.Asset{}, err
	}

	publicID := path.Join(strings.Trim(folder, "/"), fmt.Sprintf("%s_%s", randomID(), sanitizedName))
	objectKey := s.applyPrefix(publicID)

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return media.Asset{}, fmt.Errorf("read sniff: %w", readErr)
	}
	mimeType := http.DetectContentType(sniff[:n])
	body := io.MultiReader(bytes.NewReader(sniff[:n]), r)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(mimeType),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		metrics.IncMediaUploadFailure()
		return media.Asset{}, fmt.Errorf("%w: s3 put object bucket=%s key=%s: %v", media.ErrUpstream, s.bucket, objectKey, err)
	}
	metrics.IncMediaUpload()

	return media.Asset{
		URL:      s.publicURL(objectKey),
		PublicID: publicID,
		Kind:     kind,
	}, nil
}

// Remove deletes the object identified by the public ID.
func (s *Store) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	objectKey := s.applyPrefix(publicID)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("%w: s3 delete object bucket=%s key=%s: %v", media.ErrUpstream, s.bucket, objectKey, err)
	}
	return nil
}

func (s *Store) publicURL(objectKey string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + objectKey
	}
	if s.region != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectKey)
}

func (s *Store) applyPrefix(key string) string {
	cleanKey := strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return cleanKey
	}
	return s.prefix + "/" + cleanKey
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ media.Store = (*Store)(nil)
