package pagination_test

import (
	"testing"

	"github.com/bazarkas/cashflow_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 10, pagination.Offset(2, 10))
	assert.Equal(t, 90, pagination.Offset(10, 10))
	// Out-of-range page numbers clamp to the first page.
	assert.Equal(t, 0, pagination.Offset(0, 10))
	assert.Equal(t, 0, pagination.Offset(-3, 10))
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int64
	}{
		{"exact multiple", 20, 10, 2},
		{"remainder adds a page", 25, 10, 3},
		{"single partial page", 5, 10, 1},
		{"no rows", 0, 10, 0},
		{"degenerate page size", 25, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.PageCount(tt.total, tt.pageSize))
		})
	}
}
