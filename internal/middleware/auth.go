package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/utils"
)

// SessionResolver turns a session id into a live session.
type SessionResolver interface {
	CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// AuthMiddleware validates the bearer token and resolves its session. A token
// whose session was revoked or expired is rejected even if the JWT itself is valid.
func AuthMiddleware(jwtSecret string, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "UNAUTHORIZED"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}", "code": "UNAUTHORIZED"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "code": "UNAUTHORIZED"})
			return
		}

		session, err := sessions.CurrentSession(c.Request.Context(), claims.ID)
		if err != nil || session.Identity.IdentityID != claims.Subject {
			logger.Warn("Session is not live", slog.String("session_id", claims.ID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer valid", "code": "UNAUTHORIZED"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("identity_id", session.Identity.IdentityID),
			slog.String("role", string(session.Identity.Standing.Role())),
		)
		ctx := WithSession(WithLogger(c.Request.Context(), enrichedLogger), session)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireOwner rejects any session that is not the owner's.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "UNAUTHORIZED"})
			return
		}
		if !session.Identity.IsOwner() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Owner-only route refused")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Only the owner may do this", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
