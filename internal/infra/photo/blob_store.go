// Package photo archives meal photos in a gocloud.dev blob bucket.
package photo

import (
	"context"
	"log/slog"
	"mime"
	"strings"

	"nutriledger/config"
	"nutriledger/internal/domain/lifecycle"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const keyPrefix = "meals/"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by photos.bucketUrl. Without one, photos are
// discarded.
func New(params Params) (service.PhotoStore, error) {
	url := ""
	if params.Config.Photos != nil {
		url = strings.TrimSpace(params.Config.Photos.BucketURL)
	}
	if url == "" {
		params.Logger.Info("Photo archive disabled")

		return discardStore{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, url)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// BlobStore writes each photo to <prefix><logID><ext>.
type BlobStore struct {
	bucket *blob.Bucket
}

// Open opens a bucket URL such as "mem://", "file:///var/photos" or "gs://name".
func Open(ctx context.Context, url string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open photo bucket %s", url)
	}

	return &BlobStore{bucket: bucket}, nil
}

// Save implements service.PhotoStore.
func (s *BlobStore) Save(ctx context.Context, logID, contentType string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, Key(logID, contentType), data, opts); err != nil {
		return errors.Wrapf(err, "write photo for %s", logID)
	}

	return nil
}

// Close implements service.PhotoStore.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}

// Key returns the object key of a log's photo.
func Key(logID, contentType string) string {
	ext := ""
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	return keyPrefix + logID + ext
}

type discardStore struct{}

func (discardStore) Save(context.Context, string, string, []byte) error { return nil }
func (discardStore) Close() error                                       { return nil }
