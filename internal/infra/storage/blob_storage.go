// Package storage persists uploaded files through gocloud.dev blob buckets,
// so the same code serves a local directory in development and GCS in
// production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"adinas/config"
	"adinas/internal/domain/lifecycle"
	"adinas/internal/domain/service"
	"adinas/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests
	"gocloud.dev/gcerrors"
)

// blobStorage implements the service.FileStorage interface on a blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for FileStorage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its shutdown into the app lifecycle.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is not configured")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket. Split out from New so tests
// can use an in-memory bucket directly.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores the file content under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write file content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize file upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a stored file by its key. Deleting a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete file")
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}
