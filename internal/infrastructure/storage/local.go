package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes payloads to a directory on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates a local file store rooted at dir, creating the
// directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes data under the store's directory and returns the stored path
func (s *LocalStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}
