// Package storage keeps uploaded binary assets on the local filesystem
// behind a narrow store/fetch interface.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("file not found")

type FileStore struct {
	dir string
}

// NewFileStore ensures dir exists and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Store writes content under a freshly generated unique name built from
// prefix and the extension of originalName, and returns that name.
// Concurrent uploads never collide because every name embeds a new UUID.
func (s *FileStore) Store(content io.Reader, prefix, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	name := fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Path resolves a stored name to its on-disk path. Names are reduced to
// their base so a caller cannot reach outside the upload directory.
func (s *FileStore) Path(name string) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}
