package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/utils/pagination"
)

// transactionService implements the transaction queries and writes on top
// of the transaction repository. Filters are normalized and validated here
// once, then handed to the store unchanged, so the listing and its stats
// always see the same predicate.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// prepareFilter normalizes then validates a caller-supplied filter. The
// returned filter is the one that must reach the repository.
func (s *transactionService) prepareFilter(filter domain.TransactionFilter) (domain.TransactionFilter, error) {
	normalized := filter.Normalize()
	if err := normalized.Validate(); err != nil {
		return domain.TransactionFilter{}, err
	}
	return normalized, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, requestor domain.Requestor, filter domain.TransactionFilter) ([]domain.TransactionWithTenant, int64, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, 0, err
	}

	normalized, err := s.prepareFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := s.txnRepo.ListTransactions(ctx, normalized)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions", slog.Int("page", normalized.Page))
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	if rows == nil {
		rows = []domain.TransactionWithTenant{}
	}
	s.LogDebug(ctx, "transactions listed",
		slog.Int64("total", total),
		slog.Int64("pages", pagination.PageCount(total, normalized.PageSize)))
	return rows, total, nil
}

func (s *transactionService) GetTransactionStats(ctx context.Context, requestor domain.Requestor, filter domain.TransactionFilter) (domain.TransactionStats, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return domain.TransactionStats{}, err
	}

	normalized, err := s.prepareFilter(filter)
	if err != nil {
		return domain.TransactionStats{}, err
	}

	stats, err := s.txnRepo.GetTransactionStats(ctx, normalized)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate transaction stats")
		return domain.TransactionStats{}, fmt.Errorf("failed to aggregate transaction stats: %w", err)
	}
	return stats, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, requestor domain.Requestor, id int64) (*domain.TransactionDetail, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	detail, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *transactionService) ListTenantTransactions(ctx context.Context, requestor domain.Requestor, tenantID string) ([]domain.Transaction, error) {
	if !requestor.IsAdmin() && requestor.ID != tenantID {
		return nil, apperrors.ErrForbidden
	}

	txns, err := s.txnRepo.FindTransactionsByTenant(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "failed to list tenant transactions", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list tenant transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, requestor domain.Requestor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, apperrors.NewValidationError("unknown transaction type")
	}

	txnDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("transaction date must be YYYY-MM-DD")
	}
	// Compare calendar dates, not instants. The parsed date is midnight
	// UTC, which is ahead of time.Now for part of the day in zones east
	// of UTC even when the date itself is today.
	today := time.Now()
	if txnDate.After(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)) {
		return nil, apperrors.NewValidationError("transaction date must not be in the future")
	}

	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("transaction requires at least one item")
	}

	// Subtotals and the total are always recomputed here; client-sent
	// figures are never trusted.
	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := domain.NewTransactionItem(itemReq.ProductID, itemReq.ProductName, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	txn := domain.Transaction{
		TenantID:        requestor.ID,
		Type:            txnType,
		TotalAmount:     domain.ItemsTotal(items),
		Note:            req.Note,
		ReceiptURL:      req.ReceiptURL,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn, items)
	if err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("tenant_id", requestor.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction recorded",
		slog.Int64("transaction_id", saved.ID),
		slog.String("tenant_id", saved.TenantID),
		slog.Int64("total_amount", saved.TotalAmount))
	return saved, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, requestor domain.Requestor, id int64, req dto.UpdateTransactionRequest) (*domain.TransactionDetail, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	detail, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txn := detail.Transaction
	if req.Type != nil {
		newType := domain.TransactionType(*req.Type)
		if !newType.IsValid() {
			return nil, apperrors.NewValidationError("unknown transaction type")
		}
		txn.Type = newType
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return nil, apperrors.NewValidationError("total amount must not be negative")
		}
		txn.TotalAmount = *req.TotalAmount
	}
	if req.TransactionDate != nil {
		newDate, err := time.Parse("2006-01-02", *req.TransactionDate)
		if err != nil {
			return nil, apperrors.NewValidationError("transaction date must be YYYY-MM-DD")
		}
		txn.TransactionDate = newDate
	}
	if req.Note != nil {
		txn.Note = req.Note
	}
	if req.ReceiptURL != nil {
		txn.ReceiptURL = req.ReceiptURL
	}
	txn.UpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.Int64("transaction_id", id))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	detail.Transaction = txn
	return detail, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, requestor domain.Requestor, id int64) error {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return err
	}

	// Lookup first so deleting a missing or already-deleted row reports
	// not found instead of silently succeeding.
	if _, err := s.txnRepo.FindTransactionByID(ctx, id); err != nil {
		return err
	}

	if err := s.txnRepo.MarkTransactionDeleted(ctx, id, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.Int64("transaction_id", id))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction deleted", slog.Int64("transaction_id", id))
	return nil
}
