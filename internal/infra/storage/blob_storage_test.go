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
	defer bucket.Close()

	store := NewBlobStorage(bucket, "/assets/", "https://cdn.example.com/")

	obj, err := store.Upload(ctx, "banners/a.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "banners/a.jpg", obj.Key)
	assert.Equal(t, "https://cdn.example.com/assets/banners/a.jpg", obj.URL)

	data, err := bucket.ReadAll(ctx, "assets/banners/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "assets/banners/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "banners/a.jpg"))
	exists, err := bucket.Exists(ctx, "assets/banners/a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "", "")

	assert.NoError(t, store.Delete(context.Background(), "teachers/missing.png"))
}

func TestBlobStorage_NoPrefix(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "", "http://localhost:8080/assets")

	obj, err := store.Upload(context.Background(), "teachers/t.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/assets/teachers/t.png", obj.URL)
}
