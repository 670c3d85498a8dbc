package services

import (
	"context"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/bazarkas/cashflow_app/internal/dto"
)

// TenantSvcFacade manages vendor accounts. List/create/update/delete are
// admin-restricted; Authenticate and the by-id/by-email lookups back the
// auth layer.
type TenantSvcFacade interface {
	// Authenticate verifies email+password credentials and returns the
	// matching account, or apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.Tenant, error)

	// GetTenantByID returns a profile or apperrors.ErrNotFound.
	GetTenantByID(ctx context.Context, id string) (*domain.Tenant, error)

	// GetTenantByEmail returns a profile or apperrors.ErrNotFound. Used
	// by the Google sign-in flow to map a validated Google identity onto
	// a provisioned account.
	GetTenantByEmail(ctx context.Context, email string) (*domain.Tenant, error)

	ListTenants(ctx context.Context, requestor domain.Requestor) ([]domain.Tenant, error)
	ListTenantOptions(ctx context.Context, requestor domain.Requestor) ([]domain.TenantOption, error)
	ListTenantRevenueSummaries(ctx context.Context, requestor domain.Requestor) ([]domain.TenantRevenueSummary, error)

	CreateTenant(ctx context.Context, requestor domain.Requestor, req dto.CreateTenantRequest) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, requestor domain.Requestor, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, requestor domain.Requestor, id string) error
}
