package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

type stubMediaRepo struct {
	files     map[string]*domain.MediaFile
	insertErr error
}

func newStubMediaRepo() *stubMediaRepo {
	return &stubMediaRepo{files: make(map[string]*domain.MediaFile)}
}

func (r *stubMediaRepo) Insert(_ context.Context, file *domain.MediaFile) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	stored := *file
	r.files[file.Filename] = &stored
	return nil
}

func (r *stubMediaRepo) FindByFilename(_ context.Context, filename string) (*domain.MediaFile, error) {
	f, ok := r.files[filename]
	if !ok {
		return nil, domain.ErrNotFound
	}
	file := *f
	return &file, nil
}

func (r *stubMediaRepo) List(_ context.Context, _ int64) ([]domain.MediaFile, error) {
	out := []domain.MediaFile{}
	for _, f := range r.files {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubMediaRepo) Delete(_ context.Context, filename string) error {
	if _, ok := r.files[filename]; !ok {
		return domain.ErrNotFound
	}
	delete(r.files, filename)
	return nil
}

type stubFileStore struct {
	stored  map[string][]byte
	saveErr error
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{stored: make(map[string][]byte)}
}

func (s *stubFileStore) Save(name string, content io.Reader) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return 0, err
	}
	s.stored[name] = data
	return int64(len(data)), nil
}

func (s *stubFileStore) Remove(name string) error {
	if _, ok := s.stored[name]; !ok {
		return domain.ErrNotFound
	}
	delete(s.stored, name)
	return nil
}

func (s *stubFileStore) Path(name string) (string, error) {
	if _, ok := s.stored[name]; !ok {
		return "", domain.ErrNotFound
	}
	return "/uploads/" + name, nil
}

func newMediaService(repo *stubMediaRepo, files *stubFileStore) *MediaService {
	return NewMediaService(repo, files, zerolog.Nop())
}

func upload(name string, size int64) ports.UploadInput {
	return ports.UploadInput{
		Filename:    name,
		ContentType: "image/png",
		Size:        size,
		Content:     bytes.NewBufferString("content"),
	}
}

func TestMediaService_Upload_Success(t *testing.T) {
	repo := newStubMediaRepo()
	files := newStubFileStore()
	svc := newMediaService(repo, files)

	file, err := svc.Upload(context.Background(), upload("boiler room.PNG", 7), "admin")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasSuffix(file.Filename, ".PNG") {
		t.Fatalf("expected original extension case preserved, got %q", file.Filename)
	}
	if file.Filename == "boiler room.PNG" {
		t.Fatalf("expected generated filename, got the original")
	}
	if file.OriginalFilename != "boiler room.PNG" {
		t.Fatalf("unexpected original filename: %q", file.OriginalFilename)
	}
	if file.URL != "/api/media/"+file.Filename {
		t.Fatalf("unexpected url: %q", file.URL)
	}
	if file.UploadedBy != "admin" {
		t.Fatalf("unexpected uploader: %q", file.UploadedBy)
	}
	if _, ok := files.stored[file.Filename]; !ok {
		t.Fatalf("bytes not written to the store")
	}
	if _, err := repo.FindByFilename(context.Background(), file.Filename); err != nil {
		t.Fatalf("metadata not recorded: %v", err)
	}
}

func TestMediaService_Upload_RejectsExtension(t *testing.T) {
	svc := newMediaService(newStubMediaRepo(), newStubFileStore())

	for _, name := range []string{"shell.php", "binary.exe", "noext", "archive.tar.gz"} {
		if _, err := svc.Upload(context.Background(), upload(name, 7), "admin"); err != domain.ErrFileTypeNotAllowed {
			t.Fatalf("%s: expected ErrFileTypeNotAllowed, got %v", name, err)
		}
	}
}

func TestMediaService_Upload_RejectsOversize(t *testing.T) {
	files := newStubFileStore()
	svc := newMediaService(newStubMediaRepo(), files)

	if _, err := svc.Upload(context.Background(), upload("big.jpg", maxFileSize+1), "admin"); err != domain.ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if len(files.stored) != 0 {
		t.Fatalf("oversized upload must not reach the file store")
	}
}

func TestMediaService_Upload_CompensatesFailedInsert(t *testing.T) {
	repo := newStubMediaRepo()
	repo.insertErr = errors.New("mongo down")
	files := newStubFileStore()
	svc := newMediaService(repo, files)

	if _, err := svc.Upload(context.Background(), upload("photo.jpg", 7), "admin"); err == nil {
		t.Fatalf("expected insert error")
	}
	if len(files.stored) != 0 {
		t.Fatalf("orphaned file left on disk after failed insert")
	}
}

func TestMediaService_UploadBulk(t *testing.T) {
	svc := newMediaService(newStubMediaRepo(), newStubFileStore())

	items, err := svc.UploadBulk(context.Background(), []ports.UploadInput{
		upload("a.jpg", 7),
		upload("b.php", 7),
		upload("c.png", 7),
	}, "admin")
	if err != nil {
		t.Fatalf("bulk upload failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Error != "" || items[0].File == nil {
		t.Fatalf("first file should succeed: %+v", items[0])
	}
	if items[1].Error == "" || items[1].File != nil {
		t.Fatalf("second file should fail: %+v", items[1])
	}
	if items[2].Error != "" || items[2].File == nil {
		t.Fatalf("third file should succeed despite earlier failure: %+v", items[2])
	}
}

func TestMediaService_UploadBulk_TooMany(t *testing.T) {
	svc := newMediaService(newStubMediaRepo(), newStubFileStore())

	batch := make([]ports.UploadInput, maxBulkFiles+1)
	for i := range batch {
		batch[i] = upload("x.jpg", 7)
	}
	if _, err := svc.UploadBulk(context.Background(), batch, "admin"); err != domain.ErrTooManyFiles {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
}

func TestMediaService_Resolve_WithoutMetadata(t *testing.T) {
	repo := newStubMediaRepo()
	files := newStubFileStore()
	files.stored["orphan.jpg"] = []byte("x")
	svc := newMediaService(repo, files)

	meta, path, err := svc.Resolve(context.Background(), "orphan.jpg")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if meta != nil {
		t.Fatalf("expected nil metadata, got %+v", meta)
	}
	if path != "/uploads/orphan.jpg" {
		t.Fatalf("unexpected path: %q", path)
	}
}

func TestMediaService_Resolve_Missing(t *testing.T) {
	svc := newMediaService(newStubMediaRepo(), newStubFileStore())
	if _, _, err := svc.Resolve(context.Background(), "nope.jpg"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMediaService_Delete(t *testing.T) {
	repo := newStubMediaRepo()
	files := newStubFileStore()
	svc := newMediaService(repo, files)

	file, err := svc.Upload(context.Background(), upload("gone.png", 7), "admin")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := svc.Delete(context.Background(), file.Filename); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByFilename(context.Background(), file.Filename); err != domain.ErrNotFound {
		t.Fatalf("metadata survived delete: %v", err)
	}
	if len(files.stored) != 0 {
		t.Fatalf("bytes survived delete")
	}

	if err := svc.Delete(context.Background(), file.Filename); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMediaService_Delete_ToleratesMissingBytes(t *testing.T) {
	repo := newStubMediaRepo()
	files := newStubFileStore()
	svc := newMediaService(repo, files)

	file, err := svc.Upload(context.Background(), upload("meta-only.png", 7), "admin")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	delete(files.stored, file.Filename)

	if err := svc.Delete(context.Background(), file.Filename); err != nil {
		t.Fatalf("delete should tolerate missing bytes: %v", err)
	}
}
