package services

import (
	"context"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// TokenSvcFacade issues the bearer tokens handed to clients.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, session *domain.Session) (string, time.Time, error)
}
