package dto

import (
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// CreateTenantRequest provisions a new vendor account. Password is
// optional so Google-only accounts can be created without one.
type CreateTenantRequest struct {
	FullName         string  `json:"fullName" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Password         *string `json:"password" binding:"omitempty,min=8"`
	Phone            *string `json:"phone"`
	StudentNumber    *string `json:"studentNumber"`
	StudyProgram     *string `json:"studyProgram"`
	BusinessName     *string `json:"businessName"`
	BusinessCategory *string `json:"businessCategory" binding:"omitempty,businesscategory"`
}

// UpdateTenantRequest edits a vendor profile. Nil fields are unchanged.
type UpdateTenantRequest struct {
	FullName         *string `json:"fullName"`
	Phone            *string `json:"phone"`
	StudentNumber    *string `json:"studentNumber"`
	StudyProgram     *string `json:"studyProgram"`
	BusinessName     *string `json:"businessName"`
	BusinessCategory *string `json:"businessCategory" binding:"omitempty,businesscategory"`
	Password         *string `json:"password" binding:"omitempty,min=8"`
}

// TenantResponse is a vendor profile as returned to clients. Credential
// material never appears here.
type TenantResponse struct {
	ID               string    `json:"id"`
	Role             string    `json:"role"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	StudentNumber    *string   `json:"studentNumber,omitempty"`
	StudyProgram     *string   `json:"studyProgram,omitempty"`
	BusinessName     *string   `json:"businessName,omitempty"`
	BusinessCategory *string   `json:"businessCategory,omitempty"`
	AuthProvider     string    `json:"authProvider"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TenantOptionResponse is the minimal identity for filter dropdowns.
type TenantOptionResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
}

// TenantRevenueSummaryResponse is one row of the admin tenants table.
type TenantRevenueSummaryResponse struct {
	TenantID          string  `json:"tenantId"`
	BusinessName      string  `json:"businessName"`
	FullName          string  `json:"fullName"`
	StudentNumber     *string `json:"studentNumber,omitempty"`
	BusinessCategory  *string `json:"businessCategory,omitempty"`
	TotalTransactions int64   `json:"totalTransactions"`
	TotalIncome       int64   `json:"totalIncome"`
	TotalExpense      int64   `json:"totalExpense"`
	NetRevenue        int64   `json:"netRevenue"`
}

func categoryString(c *domain.BusinessCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// ToTenantResponse converts a profile for the wire.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:               t.ID,
		Role:             string(t.Role),
		FullName:         t.FullName,
		Email:            t.Email,
		Phone:            t.Phone,
		StudentNumber:    t.StudentNumber,
		StudyProgram:     t.StudyProgram,
		BusinessName:     t.BusinessName,
		BusinessCategory: categoryString(t.BusinessCategory),
		AuthProvider:     t.AuthProvider,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToTenantResponses converts a list of profiles.
func ToTenantResponses(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}

// ToTenantOptionResponses converts the dropdown rows.
func ToTenantOptionResponses(options []domain.TenantOption) []TenantOptionResponse {
	responses := make([]TenantOptionResponse, len(options))
	for i, o := range options {
		responses[i] = TenantOptionResponse(o)
	}
	return responses
}

// ToTenantRevenueSummaryResponses converts the per-tenant rollups.
func ToTenantRevenueSummaryResponses(rows []domain.TenantRevenueSummary) []TenantRevenueSummaryResponse {
	responses := make([]TenantRevenueSummaryResponse, len(rows))
	for i, r := range rows {
		responses[i] = TenantRevenueSummaryResponse{
			TenantID:          r.TenantID,
			BusinessName:      r.BusinessName,
			FullName:          r.FullName,
			StudentNumber:     r.StudentNumber,
			BusinessCategory:  categoryString(r.BusinessCategory),
			TotalTransactions: r.TotalTransactions,
			TotalIncome:       r.TotalIncome,
			TotalExpense:      r.TotalExpense,
			NetRevenue:        r.NetRevenue,
		}
	}
	return responses
}
