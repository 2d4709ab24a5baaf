package services

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

// IdentityAuthSvc covers sign-in and registration.
type IdentityAuthSvc interface {
	// AuthenticateOwner checks the provisioned owner credential and opens an owner session.
	AuthenticateOwner(ctx context.Context, email, password string) (*domain.Session, error)

	// AuthenticateManager checks the stored credential and classifies the identity.
	// A pending account yields apperrors.ErrPendingApproval and no live session.
	AuthenticateManager(ctx context.Context, email, password string) (*domain.Session, error)

	// RegisterManager creates a manager awaiting approval.
	RegisterManager(ctx context.Context, req dto.RegisterManagerRequest) (*domain.Identity, error)
}

// IdentitySessionSvc resolves and ends sessions.
type IdentitySessionSvc interface {
	CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// ManagerApprovalSvc is the owner's approval queue.
type ManagerApprovalSvc interface {
	ListPendingManagers(ctx context.Context, scope domain.Scope) ([]domain.Identity, error)
	ApproveManager(ctx context.Context, scope domain.Scope, identityID, factoryID string) (*domain.Identity, error)
}

// IdentitySvcFacade combines all identity-related service interfaces
type IdentitySvcFacade interface {
	IdentityAuthSvc
	IdentitySessionSvc
	ManagerApprovalSvc
}
