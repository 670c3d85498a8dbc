package domain

import "time"

// BusinessCategory classifies a tenant's line of business.
type BusinessCategory string

const (
	CategoryCulinary BusinessCategory = "CULINARY"
	CategoryFashion  BusinessCategory = "FASHION"
	CategoryCraft    BusinessCategory = "CRAFT"
	CategoryService  BusinessCategory = "SERVICE"
	CategoryDigital  BusinessCategory = "DIGITAL"
	CategoryOther    BusinessCategory = "OTHER"
)

// IsValid reports whether c is one of the known business categories.
func (c BusinessCategory) IsValid() bool {
	switch c {
	case CategoryCulinary, CategoryFashion, CategoryCraft, CategoryService, CategoryDigital, CategoryOther:
		return true
	}
	return false
}

// AuthProvider identifies how an account authenticates.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Tenant is a profile row: either an admin account or a vendor account that
// owns products and transactions. Soft-deleted tenants keep their rows so
// historical transactions stay attributable.
type Tenant struct {
	ID               string            `json:"id"` // UUID
	Role             UserRole          `json:"role"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	PasswordHash     *string           `json:"-"`
	Phone            *string           `json:"phone,omitempty"`
	StudentNumber    *string           `json:"studentNumber,omitempty"`
	StudyProgram     *string           `json:"studyProgram,omitempty"`
	BusinessName     *string           `json:"businessName,omitempty"`
	BusinessCategory *BusinessCategory `json:"businessCategory,omitempty"`
	AuthProvider     string            `json:"authProvider"`
	ProviderUserID   *string           `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TenantOption is the minimal identity used to populate filter dropdowns.
type TenantOption struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
}

// TenantRevenueSummary is the per-tenant rollup shown on the admin tenants
// page: lifetime transaction counts and net revenue.
type TenantRevenueSummary struct {
	TenantID          string            `json:"tenantID"`
	BusinessName      string            `json:"businessName"`
	FullName          string            `json:"fullName"`
	StudentNumber     *string           `json:"studentNumber,omitempty"`
	BusinessCategory  *BusinessCategory `json:"businessCategory,omitempty"`
	TotalTransactions int64             `json:"totalTransactions"`
	TotalIncome       int64             `json:"totalIncome"`
	TotalExpense      int64             `json:"totalExpense"`
	NetRevenue        int64             `json:"netRevenue"`
}
