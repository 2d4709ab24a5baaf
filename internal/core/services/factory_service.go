package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

type factoryService struct {
	BaseService
	factoryRepo portsrepo.FactoryRepositoryFacade
}

// NewFactoryService creates a new FactoryService.
func NewFactoryService(factoryRepo portsrepo.FactoryRepositoryFacade, opts ...ServiceOption) portssvc.FactorySvcFacade {
	return &factoryService{
		BaseService: newBaseService(opts),
		factoryRepo: factoryRepo,
	}
}

var _ portssvc.FactorySvcFacade = (*factoryService)(nil)

func (s *factoryService) CreateFactory(ctx context.Context, scope domain.Scope, req dto.CreateFactoryRequest) (*domain.Factory, error) {
	if err := s.RequireOwner(ctx, scope, "create factories"); err != nil {
		return nil, err
	}
	name, location := strings.TrimSpace(req.Name), strings.TrimSpace(req.Location)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name", "is required")
	}
	if location == "" {
		return nil, apperrors.NewValidationFailedError("location", "is required")
	}

	factory := domain.Factory{
		FactoryID: uuid.NewString(),
		Name:      name,
		Location:  location,
		AuditFields: domain.AuditFields{
			CreatedAt: s.Now(),
			CreatedBy: scope.IdentityID,
		},
	}
	if err := s.factoryRepo.SaveFactory(ctx, factory); err != nil {
		s.LogError(ctx, err, "Failed to save factory")
		return nil, fmt.Errorf("failed to create factory: %w", err)
	}
	s.LogInfo(ctx, "Factory created", slog.String("factory_id", factory.FactoryID))
	return &factory, nil
}

func (s *factoryService) ListFactories(ctx context.Context, scope domain.Scope) ([]domain.Factory, error) {
	if err := s.RequireOwner(ctx, scope, "list factories"); err != nil {
		return nil, err
	}
	factories, err := s.factoryRepo.ListFactories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list factories")
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}
	return factories, nil
}
