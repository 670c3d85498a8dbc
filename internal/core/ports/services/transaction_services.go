package services

import (
	"context"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/bazarkas/cashflow_app/internal/dto"
)

// TransactionReaderSvc defines the admin-facing transaction queries. All
// of them verify the requestor's role before touching the store and return
// apperrors.ErrForbidden for non-admins.
type TransactionReaderSvc interface {
	// ListTransactions runs the filtered, sorted, paginated search and
	// returns one page plus the total number of matching rows.
	ListTransactions(ctx context.Context, requestor domain.Requestor, filter domain.TransactionFilter) ([]domain.TransactionWithTenant, int64, error)

	// GetTransactionStats aggregates all rows matching the filter,
	// pagination ignored. It shares the filter predicate with
	// ListTransactions so the two always agree.
	GetTransactionStats(ctx context.Context, requestor domain.Requestor, filter domain.TransactionFilter) (domain.TransactionStats, error)

	// GetTransactionByID returns the detail view (items + tenant
	// identity) or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, requestor domain.Requestor, id int64) (*domain.TransactionDetail, error)

	// ListTenantTransactions lists one tenant's transactions. Tenants may
	// read their own; admins may read anyone's.
	ListTenantTransactions(ctx context.Context, requestor domain.Requestor, tenantID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the transaction write operations.
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction with line items for the
	// requesting tenant. Subtotals and the total amount are recomputed
	// server-side.
	CreateTransaction(ctx context.Context, requestor domain.Requestor, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies an admin correction.
	UpdateTransaction(ctx context.Context, requestor domain.Requestor, id int64, req dto.UpdateTransactionRequest) (*domain.TransactionDetail, error)

	// DeleteTransaction soft-deletes a transaction (admin only).
	DeleteTransaction(ctx context.Context, requestor domain.Requestor, id int64) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
