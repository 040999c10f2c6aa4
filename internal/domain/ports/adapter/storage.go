package adapter

import (
	"context"
	"io"
)

// ObjectStorage is the hosted object storage collaborator. Binaries are pushed
// straight through; only metadata rows live in this service's database.
type ObjectStorage interface {
	// Put uploads the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
