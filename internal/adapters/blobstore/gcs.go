package blobstore

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// GCSStore uploads blobs to a Google Cloud Storage bucket.
type GCSStore struct {
	svc    *storage.Service
	bucket string
}

var _ ports.BlobStore = (*GCSStore)(nil)

// NewGCSStore builds the storage client. With an empty credentialsFile the
// application default credentials are used.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket cannot be empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStore{svc: svc, bucket: bucket}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	obj := &storage.Object{Name: key, ContentType: contentType}
	stored, err := s.svc.Objects.Insert(s.bucket, obj).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return "", apperrors.NewPersistenceError("failed to upload blob "+key, err)
	}
	return publicURL(stored.Bucket, stored.Name), nil
}

func publicURL(bucket, key string) string {
	return "https://storage.googleapis.com/" + bucket + "/" + key
}
