package dto

import (
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// CreateProductRequest adds a catalog entry. Admins may set TenantID to
// create on another tenant's behalf; tenants always create their own.
type CreateProductRequest struct {
	TenantID    string  `json:"tenantId"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       int64   `json:"price" binding:"gte=0"`
	Stock       int64   `json:"stock" binding:"gte=0"`
	Category    *string `json:"category"`
	SKU         *string `json:"sku"`
}

// UpdateProductRequest edits a catalog entry. Nil fields are unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Stock       *int64  `json:"stock" binding:"omitempty,gte=0"`
	Category    *string `json:"category"`
	SKU         *string `json:"sku"`
	IsActive    *bool   `json:"isActive"`
}

// ProductResponse is one catalog entry as returned to clients.
type ProductResponse struct {
	ID          int64     `json:"id"`
	TenantID    string    `json:"tenantId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Stock       int64     `json:"stock"`
	Category    *string   `json:"category,omitempty"`
	SKU         *string   `json:"sku,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToProductResponse converts a single catalog entry.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		SKU:         p.SKU,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a tenant's catalog.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
