package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

const (
	maxFileSize    = 10 << 20 // 10 MiB
	maxBulkFiles   = 10
	mediaURLPrefix = "/api/media/"
)

// allowedExtensions is the upload allow-list, checked case-insensitively.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// MediaService stores uploaded files on disk with their metadata in the
// uploads collection, keeping the two consistent via compensating cleanup.
type MediaService struct {
	repo   ports.MediaRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewMediaService(repo ports.MediaRepository, files ports.FileStore, logger zerolog.Logger) *MediaService {
	return &MediaService{repo: repo, files: files, logger: logger}
}

// Upload validates, stores, and records a single file. Validation happens
// before any bytes touch the file store. If the metadata insert fails
// after the file was written, the file is deleted again so no orphan
// remains on disk.
func (s *MediaService) Upload(ctx context.Context, in ports.UploadInput, uploadedBy string) (*domain.MediaFile, error) {
	if err := validateUpload(in); err != nil {
		return nil, err
	}

	// Unique name, original extension preserved as sent.
	name := uuid.NewString() + filepath.Ext(in.Filename)

	if _, err := s.files.Save(name, in.Content); err != nil {
		s.logger.Error().Err(err).Str("filename", in.Filename).Msg("failed to write upload")
		return nil, err
	}

	file := &domain.MediaFile{
		Filename:         name,
		OriginalFilename: in.Filename,
		ContentType:      in.ContentType,
		Size:             in.Size,
		URL:              mediaURLPrefix + name,
		UploadedBy:       uploadedBy,
		UploadedAt:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, file); err != nil {
		// Compensate: the bytes are on disk but unrecorded.
		if rmErr := s.files.Remove(name); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("filename", name).Msg("failed to remove orphaned upload")
		}
		s.logger.Error().Err(err).Str("filename", name).Msg("failed to record upload")
		return nil, err
	}

	s.logger.Info().Str("filename", name).Str("original", in.Filename).Int64("size", in.Size).Msg("file uploaded")
	return file, nil
}

// UploadBulk processes up to maxBulkFiles files independently. A file
// that fails validation or storage is reported in its item; the rest of
// the batch continues.
func (s *MediaService) UploadBulk(ctx context.Context, files []ports.UploadInput, uploadedBy string) ([]ports.BulkUploadItem, error) {
	if len(files) > maxBulkFiles {
		return nil, domain.ErrTooManyFiles
	}

	items := make([]ports.BulkUploadItem, 0, len(files))
	for _, in := range files {
		item := ports.BulkUploadItem{OriginalFilename: in.Filename}
		file, err := s.Upload(ctx, in, uploadedBy)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.File = file
		}
		items = append(items, item)
	}
	return items, nil
}

// Resolve returns the metadata and on-disk path for serving. Metadata may
// be nil for a file present on disk without a record; callers fall back
// to a generic content type.
func (s *MediaService) Resolve(ctx context.Context, filename string) (*domain.MediaFile, string, error) {
	path, err := s.files.Path(filename)
	if err != nil {
		return nil, "", err
	}

	file, err := s.repo.FindByFilename(ctx, filename)
	if err != nil {
		file = nil
	}
	return file, path, nil
}

func (s *MediaService) List(ctx context.Context, limit int64) ([]domain.MediaFile, error) {
	return s.repo.List(ctx, limit)
}

// Delete removes the metadata record and the file. The metadata row must
// exist for an affirmative success; a missing file on disk is tolerated.
func (s *MediaService) Delete(ctx context.Context, filename string) error {
	if _, err := s.repo.FindByFilename(ctx, filename); err != nil {
		return err
	}

	if err := s.files.Remove(filename); err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("file already absent from disk")
	}

	if err := s.repo.Delete(ctx, filename); err != nil {
		return err
	}

	s.logger.Info().Str("filename", filename).Msg("file deleted")
	return nil
}

func validateUpload(in ports.UploadInput) error {
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return domain.ErrFileTypeNotAllowed
	}
	if in.Size > maxFileSize {
		return domain.ErrFileTooLarge
	}
	return nil
}
