package domain

import (
	"strings"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/utils/pagination"
)

// SortField selects the single active sort axis for a transaction query.
// Only one axis is ever active: choosing the amount axis replaces the date
// axis and vice versa.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection orders results ascending or descending on the active axis.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Filter defaults applied by Normalize.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TransactionFilter is the canonical query shape for transaction listings
// and aggregations. The zero value of each field means "no constraint"
// (all tenants, all types, unbounded dates, no search). It is a plain value
// object: no I/O, structural equality via ==.
type TransactionFilter struct {
	TenantID   string          // empty selects all tenants
	Type       TransactionType // empty selects both types
	Search     string          // matched against tenant business name, full name, email
	NoteSearch string          // matched against the transaction note
	DateFrom   time.Time       // inclusive; zero means open lower bound
	DateTo     time.Time       // inclusive; zero means open upper bound
	Page       int
	PageSize   int
	SortBy     SortField
	SortDir    SortDirection
}

// Normalize returns a copy with defaults applied: page 1, page size 10,
// date-descending order, whitespace-only search treated as absent and an
// unknown sort axis or direction reset to the default. Pagination and sort
// fields that are merely unset are filled in; invalid values (negative
// page size, bad enum) are left for Validate to reject.
func (f TransactionFilter) Normalize() TransactionFilter {
	out := f
	out.Search = strings.TrimSpace(f.Search)
	out.NoteSearch = strings.TrimSpace(f.NoteSearch)
	if out.Page == 0 {
		out.Page = DefaultPage
	}
	if out.PageSize == 0 {
		out.PageSize = DefaultPageSize
	}
	if out.SortBy == "" {
		out.SortBy = SortByDate
	}
	if out.SortDir == "" {
		out.SortDir = SortDesc
	}
	return out
}

// Validate rejects malformed filters before any data-store call.
func (f TransactionFilter) Validate() error {
	if f.Page < 1 {
		return apperrors.NewValidationError("page must be at least 1")
	}
	if f.PageSize <= 0 {
		return apperrors.NewValidationError("page size must be positive")
	}
	if f.Type != "" && !f.Type.IsValid() {
		return apperrors.NewValidationError("unknown transaction type")
	}
	if f.SortBy != SortByDate && f.SortBy != SortByAmount {
		return apperrors.NewValidationError("unknown sort field")
	}
	if f.SortDir != SortAsc && f.SortDir != SortDesc {
		return apperrors.NewValidationError("unknown sort direction")
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateTo.Before(f.DateFrom) {
		return apperrors.NewValidationError("date range upper bound precedes lower bound")
	}
	return nil
}

// Offset is the row offset implied by the pagination window.
func (f TransactionFilter) Offset() int {
	return pagination.Offset(f.Page, f.PageSize)
}
