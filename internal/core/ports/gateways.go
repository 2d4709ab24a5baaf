package ports

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// BlobStore persists binary objects and returns a URL they can be fetched from.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// EventPublisher delivers domain events to external notification adapters.
// Delivery is best-effort; callers log a failure and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// ExportAdapter renders a report payload into a shareable artifact.
type ExportAdapter interface {
	Format() string
	Render(ctx context.Context, payload domain.ExportPayload) (domain.Artifact, error)
}
