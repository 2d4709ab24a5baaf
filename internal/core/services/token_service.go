package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/platform/config"
	"github.com/SscSPs/factory_ops_app/internal/utils"
)

// tokenService signs the access tokens handed out for sessions.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken signs a JWT that expires with the session.
func (s *tokenService) GenerateAccessToken(_ context.Context, session *domain.Session) (string, time.Time, error) {
	token, err := utils.GenerateJWT(session.Identity.IdentityID, session.SessionID, s.cfg.JWTSecret, session.ExpiresAt, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, session.ExpiresAt, nil
}
