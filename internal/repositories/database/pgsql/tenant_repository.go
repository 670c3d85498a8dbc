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

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for profile data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `id, role, full_name, email, password_hash, phone, student_number, study_program,
		business_name, business_category, auth_provider, provider_user_id, created_at, updated_at`

func scanTenant(row pgx.CollectableRow) (domain.Tenant, error) {
	var tenant domain.Tenant
	err := row.Scan(
		&tenant.ID,
		&tenant.Role,
		&tenant.FullName,
		&tenant.Email,
		&tenant.PasswordHash,
		&tenant.Phone,
		&tenant.StudentNumber,
		&tenant.StudyProgram,
		&tenant.BusinessName,
		&tenant.BusinessCategory,
		&tenant.AuthProvider,
		&tenant.ProviderUserID,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	return tenant, err
}

// FindTenantByID retrieves a profile by ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM profiles WHERE id = $1 AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile %s: %w", id, err)
	}
	tenant, err := pgx.CollectOneRow(rows, scanTenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile %s: %w", id, err)
	}
	return &tenant, nil
}

// FindTenantByEmail retrieves a profile by email.
func (r *PgxTenantRepository) FindTenantByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM profiles WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile by email: %w", err)
	}
	tenant, err := pgx.CollectOneRow(rows, scanTenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile by email: %w", err)
	}
	return &tenant, nil
}

// FindTenants retrieves all non-deleted vendor profiles, newest first.
func (r *PgxTenantRepository) FindTenants(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM profiles
		WHERE role = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id;`
	rows, err := r.Pool.Query(ctx, query, string(domain.RoleTenant))
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	tenants, err := pgx.CollectRows(rows, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return tenants, nil
}

// FindTenantOptions retrieves the dropdown identity list.
func (r *PgxTenantRepository) FindTenantOptions(ctx context.Context) ([]domain.TenantOption, error) {
	query := `
		SELECT id, COALESCE(business_name, ''), full_name, email
		FROM profiles
		WHERE role = $1 AND deleted_at IS NULL
		ORDER BY business_name NULLS LAST, full_name;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.RoleTenant))
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant options: %w", err)
	}
	defer rows.Close()

	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TenantOption, error) {
		var option domain.TenantOption
		err := row.Scan(&option.ID, &option.BusinessName, &option.FullName, &option.Email)
		return option, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenant options: %w", err)
	}
	return options, nil
}

// FindTenantRevenueSummaries retrieves per-tenant lifetime rollups,
// highest net revenue first. Tenants without transactions appear with
// zeroed figures.
func (r *PgxTenantRepository) FindTenantRevenueSummaries(ctx context.Context) ([]domain.TenantRevenueSummary, error) {
	query := `
		SELECT p.id, COALESCE(p.business_name, ''), p.full_name, p.student_number, p.business_category,
		       COUNT(t.id),
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.total_amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.total_amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.total_amount ELSE -t.total_amount END), 0)
		FROM profiles p
		LEFT JOIN transactions t ON t.tenant_id = p.id AND t.deleted_at IS NULL
		WHERE p.role = $1 AND p.deleted_at IS NULL
		GROUP BY p.id, p.business_name, p.full_name, p.student_number, p.business_category
		ORDER BY 9 DESC, p.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.RoleTenant))
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant revenue summaries: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TenantRevenueSummary, error) {
		var summary domain.TenantRevenueSummary
		err := row.Scan(
			&summary.TenantID,
			&summary.BusinessName,
			&summary.FullName,
			&summary.StudentNumber,
			&summary.BusinessCategory,
			&summary.TotalTransactions,
			&summary.TotalIncome,
			&summary.TotalExpense,
			&summary.NetRevenue,
		)
		return summary, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenant revenue summaries: %w", err)
	}
	return summaries, nil
}

// SaveTenant persists a new profile.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO profiles (id, role, full_name, email, password_hash, phone, student_number, study_program,
			business_name, business_category, auth_provider, provider_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		tenant.ID,
		string(tenant.Role),
		tenant.FullName,
		tenant.Email,
		tenant.PasswordHash,
		tenant.Phone,
		tenant.StudentNumber,
		tenant.StudyProgram,
		tenant.BusinessName,
		tenant.BusinessCategory,
		tenant.AuthProvider,
		tenant.ProviderUserID,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", tenant.ID, err)
	}
	return nil
}

// UpdateTenant updates an existing profile's details.
func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		UPDATE profiles
		SET full_name = $2, password_hash = $3, phone = $4, student_number = $5, study_program = $6,
			business_name = $7, business_category = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		tenant.ID,
		tenant.FullName,
		tenant.PasswordHash,
		tenant.Phone,
		tenant.StudentNumber,
		tenant.StudyProgram,
		tenant.BusinessName,
		tenant.BusinessCategory,
		tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", tenant.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkTenantDeleted soft-deletes a profile.
func (r *PgxTenantRepository) MarkTenantDeleted(ctx context.Context, id string, deletedAt time.Time) error {
	query := `UPDATE profiles SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
