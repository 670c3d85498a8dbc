package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `id, tenant_id, name, description, price, stock, category, sku, is_active, created_at, updated_at`

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.TenantID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Category,
		&product.SKU,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	return product, err
}

// FindProductByID retrieves a product by ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}
	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product %d: %w", id, err)
	}
	return &product, nil
}

// FindProductsByTenant retrieves a tenant's non-deleted products, name order.
func (r *PgxProductRepository) FindProductsByTenant(ctx context.Context, tenantID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY name, id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products for tenant %s: %w", tenantID, err)
	}
	return products, nil
}

// SaveProduct persists a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (tenant_id, name, description, price, stock, category, sku, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		product.TenantID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.SKU,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

// UpdateProduct updates an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category = $6, sku = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.SKU,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkProductDeleted soft-deletes a product. Line items keep their
// snapshot of its name.
func (r *PgxProductRepository) MarkProductDeleted(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE products SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
