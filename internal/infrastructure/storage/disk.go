// Package storage persists uploaded media bytes on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// DiskStore writes uploads into a single flat directory. Names are
// generated upstream and never contain path separators; Path rejects
// anything that would escape the directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a
// store rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save streams content into a new file and returns the bytes written.
func (s *DiskStore) Save(name string, content io.Reader) (int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}

	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A half-written file is useless; remove it.
		_ = os.Remove(path)
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}

// Remove deletes the file. An already-absent file is an error so callers
// can decide whether absence matters to them.
func (s *DiskStore) Remove(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// Path returns the on-disk path of an existing file.
func (s *DiskStore) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	return path, nil
}

// resolve joins name onto the root, refusing names that traverse out.
func (s *DiskStore) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", domain.ErrNotFound
	}
	return filepath.Join(s.dir, name), nil
}
