package services

import (
	"context"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/bazarkas/cashflow_app/internal/dto"
)

// ProductSvcFacade manages a tenant's catalog. Tenants operate on their
// own products; admins may operate on anyone's.
type ProductSvcFacade interface {
	ListProducts(ctx context.Context, requestor domain.Requestor, tenantID string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, requestor domain.Requestor, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, requestor domain.Requestor, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, requestor domain.Requestor, id int64, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, requestor domain.Requestor, id int64) error
}
