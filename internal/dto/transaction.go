package dto

import (
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// ListTransactionsRequest carries the admin search controls as query
// parameters. Unset fields mean "no constraint"; defaults are applied by
// the filter's Normalize.
type ListTransactionsRequest struct {
	TenantID   string `form:"tenantId"`
	Type       string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Search     string `form:"search"`
	NoteSearch string `form:"noteSearch"`
	DateFrom   string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
	SortBy     string `form:"sortBy" binding:"omitempty,oneof=date amount"`
	SortDir    string `form:"sortDir" binding:"omitempty,oneof=asc desc"`
}

// ToFilter maps the bound query parameters onto the canonical filter
// shape. Date strings are already format-checked by the binding.
func (r ListTransactionsRequest) ToFilter() domain.TransactionFilter {
	f := domain.TransactionFilter{
		TenantID:   r.TenantID,
		Type:       domain.TransactionType(r.Type),
		Search:     r.Search,
		NoteSearch: r.NoteSearch,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     domain.SortField(r.SortBy),
		SortDir:    domain.SortDirection(r.SortDir),
	}
	if r.DateFrom != "" {
		f.DateFrom, _ = time.Parse("2006-01-02", r.DateFrom)
	}
	if r.DateTo != "" {
		f.DateTo, _ = time.Parse("2006-01-02", r.DateTo)
	}
	return f.Normalize()
}

// CreateTransactionItemRequest is one line item of a new transaction.
type CreateTransactionItemRequest struct {
	ProductID   *int64 `json:"productId"`
	ProductName string `json:"productName" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required,gt=0"`
	UnitPrice   int64  `json:"unitPrice" binding:"gte=0"`
}

// CreateTransactionRequest records a new transaction for the caller.
// The total amount is computed from the items server-side.
type CreateTransactionRequest struct {
	Type            string                         `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	TransactionDate string                         `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Note            *string                        `json:"note"`
	ReceiptURL      *string                        `json:"receiptUrl" binding:"omitempty,url"`
	Items           []CreateTransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateTransactionRequest is an admin correction. Nil fields are left
// unchanged; items are not editable after the fact.
type UpdateTransactionRequest struct {
	Type            *string `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	TotalAmount     *int64  `json:"totalAmount" binding:"omitempty,gte=0"`
	TransactionDate *string `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	Note            *string `json:"note"`
	ReceiptURL      *string `json:"receiptUrl" binding:"omitempty,url"`
}

// TenantIdentityResponse is the joined tenant identity on transaction rows.
type TenantIdentityResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
}

// TransactionResponse is one transaction row as returned to clients.
type TransactionResponse struct {
	ID              int64                   `json:"id"`
	TenantID        string                  `json:"tenantId"`
	Type            string                  `json:"type"`
	TotalAmount     int64                   `json:"totalAmount"`
	Note            *string                 `json:"note,omitempty"`
	ReceiptURL      *string                 `json:"receiptUrl,omitempty"`
	TransactionDate string                  `json:"transactionDate"`
	CreatedAt       time.Time               `json:"createdAt"`
	Tenant          *TenantIdentityResponse `json:"tenant,omitempty"`
}

// TransactionItemResponse is one line item of the detail view.
type TransactionItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   *int64  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	Subtotal    int64   `json:"subtotal"`
}

// TransactionDetailResponse is the by-id view with items.
type TransactionDetailResponse struct {
	TransactionResponse
	Items []TransactionItemResponse `json:"items"`
}

// TransactionStatsResponse mirrors domain.TransactionStats on the wire.
type TransactionStatsResponse struct {
	TotalIncome       int64 `json:"totalIncome"`
	TotalExpense      int64 `json:"totalExpense"`
	ActiveTenants     int64 `json:"activeTenants"`
	TotalTransactions int64 `json:"totalTransactions"`
}

func toTenantIdentityResponse(t *domain.TenantIdentity) *TenantIdentityResponse {
	if t == nil {
		return nil
	}
	return &TenantIdentityResponse{
		ID:           t.ID,
		FullName:     t.FullName,
		BusinessName: t.BusinessName,
		Email:        t.Email,
	}
}

// ToTransactionResponse converts a domain transaction (without join data).
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		TenantID:        txn.TenantID,
		Type:            string(txn.Type),
		TotalAmount:     txn.TotalAmount,
		Note:            txn.Note,
		ReceiptURL:      txn.ReceiptURL,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a joined page of transactions.
func ToTransactionResponses(rows []domain.TransactionWithTenant) []TransactionResponse {
	responses := make([]TransactionResponse, len(rows))
	for i, row := range rows {
		resp := ToTransactionResponse(&row.Transaction)
		resp.Tenant = toTenantIdentityResponse(row.Tenant)
		responses[i] = resp
	}
	return responses
}

// ToTransactionDetailResponse converts the by-id detail view.
func ToTransactionDetailResponse(d *domain.TransactionDetail) TransactionDetailResponse {
	resp := TransactionDetailResponse{
		TransactionResponse: ToTransactionResponse(&d.Transaction),
		Items:               make([]TransactionItemResponse, len(d.Items)),
	}
	resp.Tenant = toTenantIdentityResponse(d.Tenant)
	for i, item := range d.Items {
		resp.Items[i] = TransactionItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}
	return resp
}

// ToTransactionStatsResponse converts the aggregate figures.
func ToTransactionStatsResponse(s domain.TransactionStats) TransactionStatsResponse {
	return TransactionStatsResponse(s)
}
