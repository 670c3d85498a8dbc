package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/utils"
)

// tenantService manages vendor accounts and backs the local credential
// checks for the auth layer.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new tenant service.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) Authenticate(ctx context.Context, email, password string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a bad password so callers cannot probe for
			// registered emails.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if tenant.PasswordHash == nil {
		// Google-only account; no local credential to check.
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, *tenant.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return tenant, nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, id)
}

func (s *tenantService) GetTenantByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *tenantService) ListTenants(ctx context.Context, requestor domain.Requestor) ([]domain.Tenant, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.FindTenants(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list tenants")
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		tenants = []domain.Tenant{}
	}
	return tenants, nil
}

func (s *tenantService) ListTenantOptions(ctx context.Context, requestor domain.Requestor) ([]domain.TenantOption, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	options, err := s.tenantRepo.FindTenantOptions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list tenant options")
		return nil, fmt.Errorf("failed to list tenant options: %w", err)
	}
	if options == nil {
		options = []domain.TenantOption{}
	}
	return options, nil
}

func (s *tenantService) ListTenantRevenueSummaries(ctx context.Context, requestor domain.Requestor) ([]domain.TenantRevenueSummary, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	summaries, err := s.tenantRepo.FindTenantRevenueSummaries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list tenant revenue summaries")
		return nil, fmt.Errorf("failed to list tenant revenue summaries: %w", err)
	}
	if summaries == nil {
		summaries = []domain.TenantRevenueSummary{}
	}
	return summaries, nil
}

func (s *tenantService) CreateTenant(ctx context.Context, requestor domain.Requestor, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.tenantRepo.FindTenantByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	var passwordHash *string
	provider := domain.ProviderGoogle
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = &hashed
		provider = domain.ProviderLocal
	}

	var category *domain.BusinessCategory
	if req.BusinessCategory != nil {
		c := domain.BusinessCategory(*req.BusinessCategory)
		if !c.IsValid() {
			return nil, apperrors.NewValidationError("unknown business category")
		}
		category = &c
	}

	now := time.Now()
	tenant := domain.Tenant{
		ID:               uuid.New().String(),
		Role:             domain.RoleTenant,
		FullName:         req.FullName,
		Email:            email,
		PasswordHash:     passwordHash,
		Phone:            req.Phone,
		StudentNumber:    req.StudentNumber,
		StudyProgram:     req.StudyProgram,
		BusinessName:     req.BusinessName,
		BusinessCategory: category,
		AuthProvider:     provider,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "failed to save tenant", slog.String("email", email))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	s.LogInfo(ctx, "tenant created", slog.String("tenant_id", tenant.ID))
	return &tenant, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, requestor domain.Requestor, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	// Tenants may edit their own profile; admins may edit anyone's.
	if !requestor.IsAdmin() && requestor.ID != id {
		return nil, apperrors.ErrForbidden
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		tenant.FullName = *req.FullName
	}
	if req.Phone != nil {
		tenant.Phone = req.Phone
	}
	if req.StudentNumber != nil {
		tenant.StudentNumber = req.StudentNumber
	}
	if req.StudyProgram != nil {
		tenant.StudyProgram = req.StudyProgram
	}
	if req.BusinessName != nil {
		tenant.BusinessName = req.BusinessName
	}
	if req.BusinessCategory != nil {
		c := domain.BusinessCategory(*req.BusinessCategory)
		if !c.IsValid() {
			return nil, apperrors.NewValidationError("unknown business category")
		}
		tenant.BusinessCategory = &c
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		tenant.PasswordHash = &hashed
	}
	tenant.UpdatedAt = time.Now()

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "failed to update tenant", slog.String("tenant_id", id))
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return tenant, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, requestor domain.Requestor, id string) error {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return err
	}

	if _, err := s.tenantRepo.FindTenantByID(ctx, id); err != nil {
		return err
	}

	if err := s.tenantRepo.MarkTenantDeleted(ctx, id, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to delete tenant", slog.String("tenant_id", id))
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.LogInfo(ctx, "tenant deleted", slog.String("tenant_id", id))
	return nil
}
