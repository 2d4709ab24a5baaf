package repositories

import (
	"context"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
)

// FactoryReader defines read operations for factories
type FactoryReader interface {
	FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error)
	// ListFactories returns every factory in creation order.
	ListFactories(ctx context.Context) ([]domain.Factory, error)
	CountFactories(ctx context.Context) (int, error)
}

// FactoryWriter defines write operations for factories
type FactoryWriter interface {
	SaveFactory(ctx context.Context, factory domain.Factory) error
}

// FactoryRepositoryFacade combines all factory-related repository interfaces
type FactoryRepositoryFacade interface {
	FactoryReader
	FactoryWriter
}

// WorkerReader defines read operations for workers
type WorkerReader interface {
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	// ListWorkers returns the workers of factoryID, or of every factory when it is empty.
	ListWorkers(ctx context.Context, factoryID string) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for workers
type WorkerWriter interface {
	SaveWorker(ctx context.Context, worker domain.Worker) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
