package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
)

func TestLocalStorePut(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/blobs/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "worker_images/abc.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/blobs/worker_images/abc.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "worker_images", "abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalStoreRejectsEscapingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../outside.jpg", "image/jpeg", []byte("x"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLocalStoreHonoursCancellation(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost/blobs")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Put(ctx, "worker_images/a.jpg", "image/jpeg", []byte("x"))
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/photos/worker_images/a.jpg", publicURL("photos", "worker_images/a.jpg"))
}
