package dto

// RecordVisitRequest is the public scanner payload. Everything is
// optional; an empty body records an anonymous visit for today.
type RecordVisitRequest struct {
	TenantID *string           `json:"tenantId" binding:"omitempty,uuid"`
	Metadata map[string]string `json:"metadata" binding:"omitempty,max=10"`
}
