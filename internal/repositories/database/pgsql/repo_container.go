package pgsql

import (
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. RateCache is left for the caller,
// which picks between NewKVCacheRepository and the in-memory store.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		SinglesRepo: newPgxSinglesRepository(dbPool),
	}
}
