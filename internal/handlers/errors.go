package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type errorMapping struct {
	kind   error
	status int
	code   string
}

// Checked in order. The auth kinds come first so an AppError carrying several
// kinds resolves to the most specific one.
var errorMappings = []errorMapping{
	{apperrors.ErrPendingApproval, http.StatusForbidden, "PENDING_APPROVAL"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{apperrors.ErrEmailInUse, http.StatusConflict, "EMAIL_IN_USE"},
	{apperrors.ErrWeakCredential, http.StatusBadRequest, "WEAK_CREDENTIAL"},
	{apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
	{apperrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{apperrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{apperrors.ErrDuplicate, http.StatusConflict, "CONFLICT"},
}

// respondError writes err as a JSON error. Anything that is not a known
// client-facing kind, persistence failures included, becomes an opaque 500.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	for _, m := range errorMappings {
		if errors.Is(err, m.kind) {
			logger.Warn("Request failed", slog.String("code", m.code), slog.String("error", err.Error()))
			c.JSON(m.status, ErrorResponse{Error: clientMessage(err), Code: m.code})
			return
		}
	}
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: "INTERNAL"})
}

// clientMessage returns the AppError message without the wrapped cause.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// respondBindError reports a request that failed binding or tag validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: describeBindError(err), Code: "VALIDATION_FAILED"})
}

func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// requireSession returns the session set by AuthMiddleware.
func requireSession(c *gin.Context) (*domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: "UNAUTHORIZED"})
		return nil, false
	}
	return session, true
}
