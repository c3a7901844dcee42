package ports

import (
	"context"
	"io"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// UploadInput describes one incoming file. Size is the declared size
// from the multipart header and is checked before any bytes are written.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// BulkUploadItem reports the outcome for a single file in a bulk upload.
type BulkUploadItem struct {
	OriginalFilename string            `json:"original_filename"`
	File             *domain.MediaFile `json:"file,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// MediaRepository persists upload metadata.
type MediaRepository interface {
	Insert(ctx context.Context, file *domain.MediaFile) error
	FindByFilename(ctx context.Context, filename string) (*domain.MediaFile, error)
	// List returns uploads newest first, capped at limit.
	List(ctx context.Context, limit int64) ([]domain.MediaFile, error)
	Delete(ctx context.Context, filename string) error
}

// FileStore persists uploaded bytes under generated names.
type FileStore interface {
	Save(name string, content io.Reader) (int64, error)
	Remove(name string) error
	// Path returns the on-disk path of a stored file, or
	// domain.ErrNotFound when it does not exist.
	Path(name string) (string, error)
}

// MediaService implements upload, retrieval, and deletion of media files.
type MediaService interface {
	Upload(ctx context.Context, in UploadInput, uploadedBy string) (*domain.MediaFile, error)
	// UploadBulk processes up to ten files; each file succeeds or fails
	// independently and the outcomes are reported per file.
	UploadBulk(ctx context.Context, files []UploadInput, uploadedBy string) ([]BulkUploadItem, error)
	// Resolve returns the stored metadata (nil when absent) and the
	// on-disk path for serving.
	Resolve(ctx context.Context, filename string) (*domain.MediaFile, string, error)
	List(ctx context.Context, limit int64) ([]domain.MediaFile, error)
	Delete(ctx context.Context, filename string) error
}
