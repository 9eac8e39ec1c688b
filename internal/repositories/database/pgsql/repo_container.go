package pgsql

import (
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	leaseRepo := newPgxLeaseRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	statsRepo := newStatsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LeaseRepo:       leaseRepo,
		TransactionRepo: transactionRepo,
		StatsRepo:       statsRepo,
	}
}

// NewDirectoryGateway exposes the read-only marketplace directory adapter.
func NewDirectoryGateway(dbPool *pgxpool.Pool) gateways.DirectoryGateway {
	return newPgxDirectoryRepository(dbPool)
}
