package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRole distinguishes the two account kinds in the system.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleTenant UserRole = "tenant"
)

// Requestor identifies the authenticated caller of a service operation.
// It is extracted from the request context by the auth middleware.
type Requestor struct {
	ID   string
	Role UserRole
}

// IsAdmin reports whether the requestor holds the admin role.
func (r Requestor) IsAdmin() bool {
	return r.Role == RoleAdmin
}
