package repositories

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// TenantReader defines read operations for profile data.
type TenantReader interface {
	// FindTenantByID retrieves a profile by ID, deleted rows excluded.
	FindTenantByID(ctx context.Context, id string) (*domain.Tenant, error)

	// FindTenantByEmail retrieves a profile by email, deleted rows excluded.
	FindTenantByEmail(ctx context.Context, email string) (*domain.Tenant, error)

	// FindTenants retrieves all non-deleted vendor profiles, newest first.
	FindTenants(ctx context.Context) ([]domain.Tenant, error)

	// FindTenantOptions retrieves the minimal identity list for filter
	// dropdowns, ordered by business name.
	FindTenantOptions(ctx context.Context) ([]domain.TenantOption, error)

	// FindTenantRevenueSummaries retrieves per-tenant lifetime rollups,
	// highest net revenue first.
	FindTenantRevenueSummaries(ctx context.Context) ([]domain.TenantRevenueSummary, error)
}

// TenantWriter defines write operations for profile data.
type TenantWriter interface {
	// SaveTenant persists a new profile.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant updates an existing profile's details.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	// MarkTenantDeleted soft-deletes a profile.
	MarkTenantDeleted(ctx context.Context, id string, deletedAt time.Time) error
}

// TenantRepositoryFacade combines all tenant repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
