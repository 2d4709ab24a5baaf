package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	identityRepo portsrepo.IdentityReader
	factoryRepo  portsrepo.FactoryReader
}

// NewDashboardService creates the owner's landing-count service.
func NewDashboardService(identityRepo portsrepo.IdentityReader, factoryRepo portsrepo.FactoryReader, opts ...ServiceOption) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:  newBaseService(opts),
		identityRepo: identityRepo,
		factoryRepo:  factoryRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardCounts, error) {
	if err := s.RequireOwner(ctx, scope, "view the dashboard"); err != nil {
		return nil, err
	}

	var counts domain.DashboardCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pending, err := s.identityRepo.ListIdentitiesByStanding(gctx, domain.RoleManagerPending, domain.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending managers: %w", err)
		}
		counts.PendingManagers = len(pending)
		return nil
	})
	g.Go(func() error {
		n, err := s.factoryRepo.CountFactories(gctx)
		if err != nil {
			return fmt.Errorf("failed to count factories: %w", err)
		}
		counts.Factories = n
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard")
		return nil, err
	}
	return &counts, nil
}
