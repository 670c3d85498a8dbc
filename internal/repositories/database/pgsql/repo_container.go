package pgsql

import (
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		TenantRepo:      newPgxTenantRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		VisitorRepo:     newPgxVisitorRepository(dbPool),
		AnalyticsRepo:   newPgxAnalyticsRepository(dbPool),
	}
}
