package usecase

import (
	"context"
	"io"

	"adinas/internal/domain/entity"
)

// UploadInput defines an incoming file upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	// Kind selects the storage prefix, e.g. "products", "content", "licenses".
	Kind string
}

// UploadOutput returns where the stored file can be fetched.
type UploadOutput struct {
	Key string
	URL string
}

// UploadUsecase defines the interface for file upload operations.
type UploadUsecase interface {
	// Upload validates and stores a file, returning its public URL. Images
	// and PDF documents only, bounded by the configured size limit.
	Upload(ctx context.Context, actor entity.Actor, input *UploadInput) (*UploadOutput, error)

	// Remove deletes a previously uploaded file by its key. Only the
	// uploader or an admin may remove a file.
	Remove(ctx context.Context, actor entity.Actor, key string) error
}
