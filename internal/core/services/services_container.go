package services

import (
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, blobs ports.BlobStore, publisher ports.EventPublisher) *portssvc.ServiceContainer {
	opts := []ServiceOption{
		WithEventPublisher(publisher),
		WithLocation(cfg.Location),
	}
	owner := OwnerCredential{Email: cfg.OwnerEmail, PasswordHash: cfg.OwnerPasswordHash}

	container := &portssvc.ServiceContainer{}
	container.Identity = NewIdentityService(repos.IdentityRepo, repos.SessionRepo, repos.FactoryRepo, owner, cfg.JWTExpiryDuration, opts...)
	container.Token = NewTokenService(cfg)
	container.Factory = NewFactoryService(repos.FactoryRepo, opts...)
	container.Worker = NewWorkerService(repos.WorkerRepo, repos.FactoryRepo, blobs, opts...)
	container.DailyLog = NewDailyLogService(repos.DailyLogRepo, repos.WorkerRepo, opts...)

	// Reports read through the log service so scope rules live in one place.
	container.Reporting = NewReportingService(container.DailyLog, opts...)
	container.Dashboard = NewDashboardService(repos.IdentityRepo, repos.FactoryRepo, opts...)

	return container
}
