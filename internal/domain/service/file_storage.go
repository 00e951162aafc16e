package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded files such as
// product images, licenses, and content covers. Implementations return a
// publicly reachable URL for the stored object.
type FileStorage interface {
	// Upload stores the file content under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes a stored file by its key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage backend.
	Close() error
}
