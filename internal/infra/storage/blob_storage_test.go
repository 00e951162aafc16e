package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStorage(bucket, "https://cdn.example.com/files/")

	url, err := store.Upload(ctx, "products/seed-bag.jpg", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/products/seed-bag.jpg", url)

	data, err := bucket.ReadAll(ctx, "products/seed-bag.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "products/seed-bag.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "products/seed-bag.jpg"))

	exists, err := bucket.Exists(ctx, "products/seed-bag.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Close())
}

func TestBlobStorage_DeleteMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com")

	assert.NoError(t, store.Delete(ctx, "never/uploaded.pdf"))
}
