package domain

import (
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
)

// TransactionType is the kind of financial event a transaction records.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a financial event recorded by a tenant. Amounts are stored
// as non-negative integers in the smallest currency unit. Transactions are
// never hard-deleted; DeletedAt marks them removed and every query excludes
// marked rows.
type Transaction struct {
	ID              int64           `json:"id"`
	TenantID        string          `json:"tenantID"`
	Type            TransactionType `json:"type"`
	TotalAmount     int64           `json:"totalAmount"`
	Note            *string         `json:"note,omitempty"`
	ReceiptURL      *string         `json:"receiptURL,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TransactionItem is a line item owned by exactly one transaction.
// ProductName is snapshotted at creation time so the line stays accurate
// even if the catalog entry is later renamed or deleted; ProductID may be
// nil once the referenced product is gone.
type TransactionItem struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transactionID"`
	ProductID     *int64    `json:"productID,omitempty"`
	ProductName   string    `json:"productName"`
	Quantity      int64     `json:"quantity"`
	UnitPrice     int64     `json:"unitPrice"`
	Subtotal      int64     `json:"subtotal"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewTransactionItem builds a line item, computing the subtotal from the
// quantity and unit price so the subtotal invariant holds for every row this
// system writes.
func NewTransactionItem(productID *int64, productName string, quantity, unitPrice int64) (TransactionItem, error) {
	if productName == "" {
		return TransactionItem{}, apperrors.NewValidationError("product name is required")
	}
	if quantity <= 0 {
		return TransactionItem{}, apperrors.NewValidationError("quantity must be positive")
	}
	if unitPrice < 0 {
		return TransactionItem{}, apperrors.NewValidationError("unit price must not be negative")
	}
	return TransactionItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity * unitPrice,
	}, nil
}

// ItemsTotal sums the subtotals of a transaction's line items. The parent
// transaction's TotalAmount is set from this at creation time.
func ItemsTotal(items []TransactionItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// TenantIdentity is the display identity joined onto transaction rows.
type TenantIdentity struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
}

// TransactionWithTenant is a transaction row enriched with its owning
// tenant's identity. Tenant is nil when the profile no longer resolves;
// that must not fail the page it appears on.
type TransactionWithTenant struct {
	Transaction
	Tenant *TenantIdentity `json:"tenant"`
}

// TransactionDetail is the by-id view: the transaction, its tenant identity
// and all of its line items.
type TransactionDetail struct {
	Transaction
	Tenant *TenantIdentity   `json:"tenant"`
	Items  []TransactionItem `json:"items"`
}

// TransactionStats are the aggregate figures for the full set of rows
// matching a filter, independent of pagination.
type TransactionStats struct {
	TotalIncome       int64 `json:"totalIncome"`
	TotalExpense      int64 `json:"totalExpense"`
	ActiveTenants     int64 `json:"activeTenants"`
	TotalTransactions int64 `json:"totalTransactions"`
}
