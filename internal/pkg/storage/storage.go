package storage

import (
	"context"
	"io"
	"time"
)

// MediaStore serves photos that the member app already uploaded.
// The admin side never writes.
type MediaStore interface {
	// Open retrieves a file
	Open(ctx context.Context, path string) (io.ReadCloser, FileInfo, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL of path under the configured base URL
	URL(path string) string
}

type FileInfo struct {
	Size    int64
	ModTime time.Time
}
