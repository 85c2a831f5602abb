// Package storage keeps uploaded banner and teacher images in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"courseadmin/config"
	"courseadmin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, keyPrefix, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		keyPrefix:     strings.Trim(keyPrefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) objectKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}

	return path.Join(s.keyPrefix, key)
}

// Upload writes body under the prefixed key.
func (s *blobStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (*service.StoredObject, error) {
	objectKey := s.objectKey(key)

	w, err := s.bucket.NewWriter(ctx, objectKey, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "open writer for %s", objectKey)
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return nil, errors.Wrapf(err, "write %s", objectKey)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "commit %s", objectKey)
	}

	return &service.StoredObject{
		Key: key,
		URL: s.publicBaseURL + "/" + objectKey,
	}, nil
}

// Delete removes the object; a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	objectKey := s.objectKey(key)
	if err := s.bucket.Delete(ctx, objectKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete %s", objectKey)
	}

	return nil
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	bucketURL, keyPrefix, publicBaseURL := defaultBucketURL, "", ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		keyPrefix = cfg.KeyPrefix
		publicBaseURL = cfg.PublicBaseURL
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Object storage uses an in-memory bucket, uploads are lost on restart")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Object storage ready", slog.String("bucket", bucketURL))

	return NewBlobStorage(bucket, keyPrefix, publicBaseURL), nil
}

// Module provides object storage and the image processor
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewObjectStorage,
		NewImageProcessor,
	),
)
