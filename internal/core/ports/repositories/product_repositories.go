package repositories

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// ProductReader defines read operations for catalog data.
type ProductReader interface {
	// FindProductByID retrieves a product by ID, deleted rows excluded.
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)

	// FindProductsByTenant retrieves a tenant's non-deleted products,
	// name order.
	FindProductsByTenant(ctx context.Context, tenantID string) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data.
type ProductWriter interface {
	// SaveProduct persists a new product, returning the stored row with
	// its generated ID.
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// MarkProductDeleted soft-deletes a product. Line items keep their
	// snapshot of its name.
	MarkProductDeleted(ctx context.Context, id int64, deletedAt time.Time) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
