// Package localfs stores blobs on the local filesystem. Used for local
// development and tests; containers map to directories under the root.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"doctrans/internal/storage"
)

type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Put(ctx context.Context, container, key string, data []byte, contentType string) error {
	abs := s.path(container, key)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create container directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, container, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(container, key))
	if os.IsNotExist(err) {
		return nil, storage.ErrBlobNotFound
	}
	return data, err
}

func (s *Store) List(ctx context.Context, container string) ([]storage.BlobInfo, error) {
	base := filepath.Join(s.root, container)
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return []storage.BlobInfo{}, nil
	}

	var blobs []storage.BlobInfo
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		blobs = append(blobs, storage.BlobInfo{
			Key:          filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list container %s: %w", container, err)
	}
	if blobs == nil {
		blobs = []storage.BlobInfo{}
	}
	return blobs, nil
}

func (s *Store) Delete(ctx context.Context, container, key string) error {
	err := os.Remove(s.path(container, key))
	if os.IsNotExist(err) {
		return storage.ErrBlobNotFound
	}
	return err
}

// SignedURL returns a file URL. There is no credential to delegate on the
// local filesystem; the URL is only meaningful to collaborators running on
// the same host (local dev, tests).
func (s *Store) SignedURL(ctx context.Context, container, key string, perms storage.Permissions, ttl time.Duration) (string, error) {
	abs, err := filepath.Abs(s.path(container, key))
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func (s *Store) path(container, key string) string {
	// Keys may contain forward slashes (path-scheme artifacts).
	parts := append([]string{s.root, container}, strings.Split(key, "/")...)
	return filepath.Join(parts...)
}
