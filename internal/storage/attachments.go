package storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MaxAttachmentSize is the per-file upload limit. Larger files are
// skipped, not rejected: the submission itself still goes through.
const MaxAttachmentSize = 5 << 20 // 5 MB

// AttachmentSaver uploads multipart attachments one at a time and
// collects their public URLs. A single bad file never fails the batch.
type AttachmentSaver struct {
	store Storage
}

// NewAttachmentSaver creates an AttachmentSaver over the given store.
func NewAttachmentSaver(store Storage) *AttachmentSaver {
	return &AttachmentSaver{store: store}
}

// SaveAll uploads each file header in order and returns the URLs of the
// files that made it. Oversized files and failed uploads are logged and
// skipped. The returned slice is never nil.
func (a *AttachmentSaver) SaveAll(ctx context.Context, files []*multipart.FileHeader) []string {
	urls := []string{}
	for _, fh := range files {
		if fh.Size > MaxAttachmentSize {
			slog.Warn("attachment skipped: too large",
				"filename", fh.Filename, "size", fh.Size, "limit", MaxAttachmentSize)
			continue
		}

		f, err := fh.Open()
		if err != nil {
			slog.Warn("attachment skipped: open failed",
				"filename", fh.Filename, "error", err)
			continue
		}

		key := attachmentKey(fh.Filename)
		url, err := a.store.Save(ctx, key, f, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			slog.Warn("attachment skipped: upload failed",
				"filename", fh.Filename, "error", err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// attachmentKey builds a collision-resistant storage key. The original
// base name is kept so downloads stay recognizable.
func attachmentKey(filename string) string {
	base := filepath.Base(filename)
	return fmt.Sprintf("attachments/%d-%s-%s",
		time.Now().UnixNano(), uuid.NewString()[:8], base)
}
