package object

import (
	"context"
	"io"
)

// ObjectStore saves and retrieves exported documents by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
