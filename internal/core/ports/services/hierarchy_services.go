package services

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

// FactorySvcFacade manages factories. Every operation is owner-only.
type FactorySvcFacade interface {
	CreateFactory(ctx context.Context, scope domain.Scope, req dto.CreateFactoryRequest) (*domain.Factory, error)
	ListFactories(ctx context.Context, scope domain.Scope) ([]domain.Factory, error)
}

// WorkerSvcFacade manages workers under the caller's scope.
type WorkerSvcFacade interface {
	// CreateWorker uploads photo first when present, then stores the worker.
	CreateWorker(ctx context.Context, scope domain.Scope, req dto.CreateWorkerRequest, photo *domain.Photo) (*domain.Worker, error)
	ListWorkers(ctx context.Context, scope domain.Scope) ([]domain.Worker, error)
}
