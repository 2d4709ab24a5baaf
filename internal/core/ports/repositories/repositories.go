package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	IdentityRepo IdentityRepositoryFacade
	SessionRepo  SessionRepositoryFacade
	FactoryRepo  FactoryRepositoryFacade
	WorkerRepo   WorkerRepositoryFacade
	DailyLogRepo DailyLogRepositoryFacade
}
