package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned archive download URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// ArchiveStorage keeps raw copies of imported CSV files so a plan can be
// re-imported or audited later.
type ArchiveStorage interface {
	// PutObject uploads the raw file content under the given key.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL for fetching an
	// archived file directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an archived file.
	DeleteObject(ctx context.Context, objectKey string) error
}
