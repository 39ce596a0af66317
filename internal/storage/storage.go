package storage

import (
	"context"
	"errors"
	"time"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobInfo describes a stored object as returned by listings.
type BlobInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Permissions describes what a signed URL may be used for.
type Permissions struct {
	Read  bool
	Write bool
}

// ObjectStore is the port every storage backend implements. Containers are
// created implicitly on first write.
type ObjectStore interface {
	Put(ctx context.Context, container, key string, data []byte, contentType string) error
	Get(ctx context.Context, container, key string) ([]byte, error)
	List(ctx context.Context, container string) ([]BlobInfo, error)
	Delete(ctx context.Context, container, key string) error

	// SignedURL issues a time-boxed, permission-scoped URL for a single
	// object without handing out the backend's master credentials.
	SignedURL(ctx context.Context, container, key string, perms Permissions, ttl time.Duration) (string, error)
}
