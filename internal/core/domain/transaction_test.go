package domain_test

import (
	"testing"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewTransactionItem(t *testing.T) {
	tests := []struct {
		name        string
		productID   *int64
		productName string
		quantity    int64
		unitPrice   int64
		wantSubtotal int64
		wantErr     bool
	}{
		{
			name:        "computes subtotal",
			productID:   int64Ptr(42),
			productName: "Es Teh",
			quantity:    3,
			unitPrice:   5000,
			wantSubtotal: 15000,
		},
		{
			name:        "nil product id allowed",
			productName: "Custom order",
			quantity:    1,
			unitPrice:   25000,
			wantSubtotal: 25000,
		},
		{
			name:        "free item",
			productName: "Sample",
			quantity:    2,
			unitPrice:   0,
			wantSubtotal: 0,
		},
		{
			name:      "missing product name",
			quantity:  1,
			unitPrice: 1000,
			wantErr:   true,
		},
		{
			name:        "zero quantity",
			productName: "Es Teh",
			quantity:    0,
			unitPrice:   5000,
			wantErr:     true,
		},
		{
			name:        "negative quantity",
			productName: "Es Teh",
			quantity:    -1,
			unitPrice:   5000,
			wantErr:     true,
		},
		{
			name:        "negative unit price",
			productName: "Es Teh",
			quantity:    1,
			unitPrice:   -100,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := domain.NewTransactionItem(tt.productID, tt.productName, tt.quantity, tt.unitPrice)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, item.Subtotal)
			assert.Equal(t, tt.productName, item.ProductName)
			assert.Equal(t, tt.productID, item.ProductID)
		})
	}
}

func TestItemsTotal(t *testing.T) {
	items := []domain.TransactionItem{
		{Subtotal: 15000},
		{Subtotal: 25000},
		{Subtotal: 0},
	}

	assert.Equal(t, int64(40000), domain.ItemsTotal(items))
	assert.Equal(t, int64(0), domain.ItemsTotal(nil))
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.TypeIncome.IsValid())
	assert.True(t, domain.TypeExpense.IsValid())
	assert.False(t, domain.TransactionType("income").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}
