// Package storage stores bulk upload files in an object store bound to one bucket.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when the object does not exist.
	ErrNotFound = errors.New("storage: object not found")
	// ErrBucketRequired is returned when an adapter is built without a bucket.
	ErrBucketRequired = errors.New("storage: bucket is required")
)

// Storage reads and writes objects in a single bucket.
type Storage interface {
	io.Closer

	// Put uploads r under key. size may be -1 when unknown.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the object under key. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object under key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
