package repositories

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data. The
// paged listing and the stats aggregation take the same filter value and
// implementations must evaluate both against the same predicate, so the
// page contents and the aggregate figures can never diverge.
type TransactionReader interface {
	// ListTransactions retrieves one page of transactions matching the
	// filter, each enriched with its tenant identity, plus the total
	// number of matching rows across all pages.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionWithTenant, int64, error)

	// GetTransactionStats aggregates every row matching the filter,
	// ignoring its pagination window.
	GetTransactionStats(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionStats, error)

	// FindTransactionByID retrieves a single non-deleted transaction with
	// its line items and tenant identity. Returns apperrors.ErrNotFound
	// when no such row exists.
	FindTransactionByID(ctx context.Context, id int64) (*domain.TransactionDetail, error)

	// FindTransactionsByTenant retrieves all non-deleted transactions for
	// one tenant, newest transaction date first.
	FindTransactionsByTenant(ctx context.Context, tenantID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and its line items in one
	// store transaction, returning the stored row with generated IDs.
	SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem) (*domain.Transaction, error)

	// UpdateTransaction applies an admin correction to an existing row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionDeleted soft-deletes a transaction.
	MarkTransactionDeleted(ctx context.Context, id int64, deletedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
