package events

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ ports.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, domain.Event) error { return nil }
