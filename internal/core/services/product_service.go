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
)

// productService manages tenant catalogs with per-tenant ownership checks.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// authorizeTenant allows a tenant to touch its own catalog and admins to
// touch anyone's.
func (s *productService) authorizeTenant(requestor domain.Requestor, tenantID string) error {
	if requestor.IsAdmin() || requestor.ID == tenantID {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *productService) ListProducts(ctx context.Context, requestor domain.Requestor, tenantID string) ([]domain.Product, error) {
	if tenantID == "" {
		tenantID = requestor.ID
	}
	if err := s.authorizeTenant(requestor, tenantID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindProductsByTenant(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "failed to list products", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, requestor domain.Requestor, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeTenant(requestor, product.TenantID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, requestor domain.Requestor, req dto.CreateProductRequest) (*domain.Product, error) {
	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = requestor.ID
	}
	if err := s.authorizeTenant(requestor, tenantID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		SKU:         req.SKU,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "failed to save product", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "product created", slog.Int64("product_id", saved.ID), slog.String("tenant_id", tenantID))
	return saved, nil
}

func (s *productService) UpdateProduct(ctx context.Context, requestor domain.Requestor, id int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeTenant(requestor, product.TenantID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("product name must not be empty")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperrors.NewValidationError("price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperrors.NewValidationError("stock must not be negative")
		}
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = req.Category
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "failed to update product", slog.Int64("product_id", id))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, requestor domain.Requestor, id int64) error {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeTenant(requestor, product.TenantID); err != nil {
		return err
	}

	if err := s.productRepo.MarkProductDeleted(ctx, id, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to delete product", slog.Int64("product_id", id))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.LogInfo(ctx, "product deleted", slog.Int64("product_id", id))
	return nil
}
