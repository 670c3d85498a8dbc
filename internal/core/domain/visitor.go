package domain

import "time"

// Visit is a single foot-traffic event recorded by the public QR scanner.
// TenantID is set when the visitor scanned a specific stall's code.
type Visit struct {
	ID        int64             `json:"id"`
	VisitDate time.Time         `json:"visitDate"` // calendar date, time part ignored
	TenantID  *string           `json:"tenantID,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// VisitorOverview is the headline pair on the admin visitors page.
type VisitorOverview struct {
	TotalVisitors int64 `json:"totalVisitors"`
	VisitorsToday int64 `json:"visitorsToday"`
}

// VisitorPoint is one day in the visitors-by-day series.
type VisitorPoint struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Count int64     `json:"count"`
}
