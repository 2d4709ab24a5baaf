package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// LocalStore writes blobs under a directory and serves them from baseURL.
// It backs development setups where no bucket is available.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ ports.BlobStore = (*LocalStore)(nil)

// NewLocalStore creates dir if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve blob dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %q: %w", abs, err)
	}
	return &LocalStore{dir: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the root directory blobs are written under.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Put(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewPersistenceError("blob upload cancelled", err)
	}
	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(target, s.dir+string(filepath.Separator)) {
		return "", apperrors.NewValidationFailedError("key", "blob key escapes the store")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", apperrors.NewPersistenceError("failed to create blob directory", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", apperrors.NewPersistenceError("failed to write blob "+key, err)
	}
	return s.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(key), "/"), nil
}
