package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// contextKey is the key type for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// WithSession returns a copy of ctx carrying the authenticated session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromCtx retrieves the authenticated session from a standard context.
func GetSessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	return session, ok && session != nil
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	return GetSessionFromCtx(c.Request.Context())
}
