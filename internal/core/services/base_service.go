package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher ports.EventPublisher
	Clock     func() time.Time
	Location  *time.Location
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithEventPublisher sets where best-effort domain events go.
func WithEventPublisher(p ports.EventPublisher) ServiceOption {
	return func(s *BaseService) { s.Publisher = p }
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) { s.Clock = clock }
}

// WithLocation sets the timezone that decides what "today" is.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) { s.Location = loc }
}

func newBaseService(opts []ServiceOption) BaseService {
	b := BaseService{Clock: time.Now, Location: time.UTC}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current instant in the configured location.
func (s *BaseService) Now() time.Time {
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return clock().In(loc)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireOwner fails with ErrForbidden unless scope is the owner's.
func (s *BaseService) RequireOwner(ctx context.Context, scope domain.Scope, action string) error {
	if scope.IsOwner() {
		return nil
	}
	s.LogInfo(ctx, "Owner-only action refused", slog.String("action", action), slog.String("identity_id", scope.IdentityID))
	return apperrors.NewForbiddenError("only the owner may " + action)
}

// RequireFactoryScope fails with ErrForbidden unless scope is the owner's or an approved manager's.
func (s *BaseService) RequireFactoryScope(ctx context.Context, scope domain.Scope, action string) error {
	if scope.IsOwner() || scope.IsManager() {
		return nil
	}
	s.LogInfo(ctx, "Action refused for scope without a factory", slog.String("action", action), slog.String("identity_id", scope.IdentityID))
	return apperrors.NewForbiddenError("an approved factory assignment is required to " + action)
}

// PublishEvent delivers event on a best-effort basis. Failures are logged and
// never reach the caller.
func (s *BaseService) PublishEvent(ctx context.Context, event domain.Event) {
	if s.Publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.Now()
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish domain event", slog.String("event", event.Name), slog.String("subject_id", event.SubjectID))
	}
}
