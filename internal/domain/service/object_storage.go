package service

import (
	"context"
	"io"
)

// StoredObject describes an uploaded object.
type StoredObject struct {
	Key string
	URL string
}

// ObjectStorage stores uploaded assets and returns their public URL.
type ObjectStorage interface {
	// Upload writes body under key and returns where it can be fetched from.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (*StoredObject, error)

	// Delete removes the object at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ImageProcessor normalises uploaded images before they are stored.
type ImageProcessor interface {
	// Normalize decodes data, bounds its width and re-encodes it.
	// It returns the new bytes, their content type and the file extension to use.
	Normalize(data []byte) (out []byte, contentType string, ext string, err error)
}
