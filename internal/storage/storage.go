package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded files. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 etc.
type Storage interface {
	// Save stores the file and returns its public URL.
	// key is a unique path within the store (e.g. "attachments/<ts>-<name>").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error
}
