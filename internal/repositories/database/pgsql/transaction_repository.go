package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// transactionFilterClause renders a filter as a WHERE clause over the
// transactions table (aliased t) left-joined to profiles (aliased p).
// The page query, the count query and the stats query all call this, so
// a filter can never mean different things to different queries.
func transactionFilterClause(f domain.TransactionFilter) (string, []any) {
	clauses := []string{"t.deleted_at IS NULL"}
	args := []any{}

	if f.TenantID != "" {
		args = append(args, f.TenantID)
		clauses = append(clauses, fmt.Sprintf("t.tenant_id = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		clauses = append(clauses, fmt.Sprintf("t.type = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(p.business_name ILIKE $%d OR p.full_name ILIKE $%d OR p.email ILIKE $%d)", n, n, n))
	}
	if f.NoteSearch != "" {
		args = append(args, "%"+f.NoteSearch+"%")
		clauses = append(clauses, fmt.Sprintf("t.note ILIKE $%d", len(args)))
	}
	if !f.DateFrom.IsZero() {
		args = append(args, f.DateFrom)
		clauses = append(clauses, fmt.Sprintf("t.transaction_date >= $%d", len(args)))
	}
	if !f.DateTo.IsZero() {
		args = append(args, f.DateTo)
		clauses = append(clauses, fmt.Sprintf("t.transaction_date <= $%d", len(args)))
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// transactionOrderClause renders the ORDER BY for a filter. The sort
// column is chosen from a fixed whitelist, never from client input
// directly. Creation order then ID break ties so pages are stable.
func transactionOrderClause(f domain.TransactionFilter) string {
	column := "t.transaction_date"
	if f.SortBy == domain.SortByAmount {
		column = "t.total_amount"
	}
	direction := "DESC"
	if f.SortDir == domain.SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, t.created_at ASC, t.id ASC", column, direction)
}

const transactionJoin = ` FROM transactions t LEFT JOIN profiles p ON p.id = t.tenant_id AND p.deleted_at IS NULL`

// ListTransactions retrieves one page of transactions plus the total
// matching row count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionWithTenant, int64, error) {
	where, args := transactionFilterClause(filter)

	countQuery := `SELECT COUNT(*)` + transactionJoin + where
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT t.id, t.tenant_id, t.type, t.total_amount, t.note, t.receipt_url,
		       t.transaction_date, t.created_at, t.updated_at,
		       p.id, p.full_name, p.business_name, p.email` +
		transactionJoin + where + transactionOrderClause(filter) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	results, err := pgx.CollectRows(rows, scanTransactionWithTenant)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return results, total, nil
}

func scanTransactionWithTenant(row pgx.CollectableRow) (domain.TransactionWithTenant, error) {
	var result domain.TransactionWithTenant
	var tenantID, fullName, businessName, email *string
	err := row.Scan(
		&result.ID,
		&result.TenantID,
		&result.Type,
		&result.TotalAmount,
		&result.Note,
		&result.ReceiptURL,
		&result.TransactionDate,
		&result.CreatedAt,
		&result.UpdatedAt,
		&tenantID,
		&fullName,
		&businessName,
		&email,
	)
	if err != nil {
		return result, err
	}
	// Deleted or missing profile rows scan as NULLs; the transaction row
	// is still returned, just without a tenant identity.
	if tenantID != nil {
		result.Tenant = &domain.TenantIdentity{
			ID:           *tenantID,
			FullName:     derefOrEmpty(fullName),
			BusinessName: derefOrEmpty(businessName),
			Email:        derefOrEmpty(email),
		}
	}
	return result, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetTransactionStats aggregates every row matching the filter, using the
// same WHERE clause as the listing.
func (r *PgxTransactionRepository) GetTransactionStats(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionStats, error) {
	where, args := transactionFilterClause(filter)

	query := `
		SELECT COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.total_amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.total_amount ELSE 0 END), 0),
		       COUNT(DISTINCT t.tenant_id),
		       COUNT(*)` +
		transactionJoin + where

	var stats domain.TransactionStats
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalIncome,
		&stats.TotalExpense,
		&stats.ActiveTenants,
		&stats.TotalTransactions,
	)
	if err != nil {
		return domain.TransactionStats{}, fmt.Errorf("failed to aggregate transaction stats: %w", err)
	}
	return stats, nil
}

// FindTransactionByID retrieves a single transaction with its tenant
// identity and line items.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.TransactionDetail, error) {
	query := `
		SELECT t.id, t.tenant_id, t.type, t.total_amount, t.note, t.receipt_url,
		       t.transaction_date, t.created_at, t.updated_at,
		       p.id, p.full_name, p.business_name, p.email` +
		transactionJoin + ` WHERE t.deleted_at IS NULL AND t.id = $1`

	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %d: %w", id, err)
	}
	withTenant, err := pgx.CollectOneRow(rows, scanTransactionWithTenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction %d: %w", id, err)
	}

	itemsQuery := `
		SELECT id, transaction_id, product_id, product_name, quantity, unit_price, subtotal, created_at
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY id;
	`
	itemRows, err := r.Pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for transaction %d: %w", id, err)
	}
	defer itemRows.Close()

	items, err := pgx.CollectRows(itemRows, func(row pgx.CollectableRow) (domain.TransactionItem, error) {
		var item domain.TransactionItem
		err := row.Scan(
			&item.ID,
			&item.TransactionID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.CreatedAt,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items for transaction %d: %w", id, err)
	}

	return &domain.TransactionDetail{
		Transaction: withTenant.Transaction,
		Tenant:      withTenant.Tenant,
		Items:       items,
	}, nil
}

// FindTransactionsByTenant retrieves all of one tenant's transactions,
// newest transaction date first.
func (r *PgxTransactionRepository) FindTransactionsByTenant(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	query := `
		SELECT id, tenant_id, type, total_amount, note, receipt_url, transaction_date, created_at, updated_at
		FROM transactions
		WHERE deleted_at IS NULL AND tenant_id = $1
		ORDER BY transaction_date DESC, created_at ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.ID,
			&txn.TenantID,
			&txn.Type,
			&txn.TotalAmount,
			&txn.Note,
			&txn.ReceiptURL,
			&txn.TransactionDate,
			&txn.CreatedAt,
			&txn.UpdatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for tenant %s: %w", tenantID, err)
	}
	return txns, nil
}

// SaveTransaction persists a transaction and its line items atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertTxn := `
		INSERT INTO transactions (tenant_id, type, total_amount, note, receipt_url, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, insertTxn,
		txn.TenantID,
		string(txn.Type),
		txn.TotalAmount,
		txn.Note,
		txn.ReceiptURL,
		txn.TransactionDate,
		txn.CreatedAt,
		txn.UpdatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	batch := &pgx.Batch{}
	insertItem := `
		INSERT INTO transaction_items (transaction_id, product_id, product_name, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range items {
		batch.Queue(insertItem,
			txn.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			txn.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("failed to insert transaction item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close item batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction applies a correction to an existing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, total_amount = $3, note = $4, receipt_url = $5, transaction_date = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.ID,
		string(txn.Type),
		txn.TotalAmount,
		txn.Note,
		txn.ReceiptURL,
		txn.TransactionDate,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", txn.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkTransactionDeleted soft-deletes a transaction.
func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE transactions SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
