package domain

import "time"

// Product is a catalog entry owned by exactly one tenant. Price is in the
// smallest currency unit. Soft-deleted products stay on disk so transaction
// items can still resolve their snapshots.
type Product struct {
	ID          int64   `json:"id"`
	TenantID    string  `json:"tenantID"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Stock       int64   `json:"stock"`
	Category    *string `json:"category,omitempty"`
	SKU         *string `json:"sku,omitempty"`
	IsActive    bool    `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
