package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo: newPgxIdentityRepository(dbPool),
		SessionRepo:  newPgxSessionRepository(dbPool),
		FactoryRepo:  newPgxFactoryRepository(dbPool),
		WorkerRepo:   newPgxWorkerRepository(dbPool),
		DailyLogRepo: newPgxDailyLogRepository(dbPool),
	}
}
