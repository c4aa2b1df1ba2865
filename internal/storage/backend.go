package storage

import (
	"context"
	"io"
)

// Backend is the binary storage used for uploaded photos. The key is the
// generated storage filename; it doubles as the photo's public identifier.
type Backend interface {
	// Put writes the full object under key. contentType may be empty.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the externally servable path or URL for key.
	URL(key string) string
}
