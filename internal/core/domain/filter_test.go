package domain_test

import (
	"testing"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFilter_Normalize_Defaults(t *testing.T) {
	got := domain.TransactionFilter{}.Normalize()

	assert.Equal(t, domain.DefaultPage, got.Page)
	assert.Equal(t, domain.DefaultPageSize, got.PageSize)
	assert.Equal(t, domain.SortByDate, got.SortBy)
	assert.Equal(t, domain.SortDesc, got.SortDir)
}

func TestTransactionFilter_Normalize_KeepsExplicitValues(t *testing.T) {
	in := domain.TransactionFilter{
		TenantID: "tenant-1",
		Type:     domain.TypeIncome,
		Page:     3,
		PageSize: 25,
		SortBy:   domain.SortByAmount,
		SortDir:  domain.SortAsc,
	}

	got := in.Normalize()

	assert.Equal(t, in, got)
}

func TestTransactionFilter_Normalize_TrimsSearch(t *testing.T) {
	got := domain.TransactionFilter{
		Search:     "  warung kopi  ",
		NoteSearch: "\tcash\n",
	}.Normalize()

	assert.Equal(t, "warung kopi", got.Search)
	assert.Equal(t, "cash", got.NoteSearch)
}

func TestTransactionFilter_Normalize_WhitespaceOnlySearchBecomesEmpty(t *testing.T) {
	got := domain.TransactionFilter{Search: "   "}.Normalize()

	assert.Empty(t, got.Search)
}

func TestTransactionFilter_Normalize_LeavesInvalidValuesForValidate(t *testing.T) {
	got := domain.TransactionFilter{Page: -1, PageSize: -5}.Normalize()

	assert.Equal(t, -1, got.Page)
	assert.Equal(t, -5, got.PageSize)
	assert.Error(t, got.Validate())
}

func TestTransactionFilter_Validate(t *testing.T) {
	base := domain.TransactionFilter{}.Normalize()

	tests := []struct {
		name    string
		mutate  func(f domain.TransactionFilter) domain.TransactionFilter
		wantErr bool
	}{
		{
			name:   "normalized zero filter is valid",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter { return f },
		},
		{
			name: "page below one",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.Page = 0
				return f
			},
			wantErr: true,
		},
		{
			name: "negative page size",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.PageSize = -1
				return f
			},
			wantErr: true,
		},
		{
			name: "unknown transaction type",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.Type = "TRANSFER"
				return f
			},
			wantErr: true,
		},
		{
			name: "known type passes",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.Type = domain.TypeExpense
				return f
			},
		},
		{
			name: "unknown sort field",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.SortBy = "note"
				return f
			},
			wantErr: true,
		},
		{
			name: "unknown sort direction",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.SortDir = "sideways"
				return f
			},
			wantErr: true,
		},
		{
			name: "inverted date range",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.DateFrom = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
				f.DateTo = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
				return f
			},
			wantErr: true,
		},
		{
			name: "single-day range is valid",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
				f.DateFrom = day
				f.DateTo = day
				return f
			},
		},
		{
			name: "open lower bound with upper bound is valid",
			mutate: func(f domain.TransactionFilter) domain.TransactionFilter {
				f.DateTo = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
				return f
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(base).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionFilter_Offset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{name: "first page", page: 1, pageSize: 10, want: 0},
		{name: "second page", page: 2, pageSize: 10, want: 10},
		{name: "deep page", page: 7, pageSize: 25, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.TransactionFilter{Page: tt.page, PageSize: tt.pageSize}
			assert.Equal(t, tt.want, f.Offset())
		})
	}
}

func TestTransactionFilter_StructuralEquality(t *testing.T) {
	a := domain.TransactionFilter{TenantID: "t-1", Page: 1, PageSize: 10}
	b := domain.TransactionFilter{TenantID: "t-1", Page: 1, PageSize: 10}

	assert.True(t, a == b)
}
