package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo InvoiceRepositoryFacade
	SinglesRepo SinglesReader
	RateCache   KeyValueStore // nil lets the service container pick the in-memory store
}
