package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

func newStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestDiskStore_SaveAndPath(t *testing.T) {
	store := newStore(t)

	n, err := store.Save("a.png", bytes.NewBufferString("payload"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n != int64(len("payload")) {
		t.Fatalf("expected %d bytes written, got %d", len("payload"), n)
	}

	path, err := store.Path("a.png")
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestDiskStore_PathMissing(t *testing.T) {
	store := newStore(t)
	if _, err := store.Path("missing.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskStore_Remove(t *testing.T) {
	store := newStore(t)

	if _, err := store.Save("b.jpg", bytes.NewBufferString("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove("b.jpg"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := store.Remove("b.jpg"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	store := newStore(t)

	outside := filepath.Join("..", "escape.png")
	if _, err := store.Save(outside, bytes.NewBufferString("x")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for traversal, got %v", err)
	}
	if _, err := store.Path("sub/dir.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for nested name, got %v", err)
	}
	if _, err := store.Path(""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty name, got %v", err)
	}
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if store.Dir() != dir {
		t.Fatalf("unexpected dir: %q", store.Dir())
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}
