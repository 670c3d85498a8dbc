package services

import (
	"context"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// AnalyticsSvcFacade provides the admin dashboard rollups. Every method
// is admin-restricted and read-only.
type AnalyticsSvcFacade interface {
	// Overview returns the headline totals and month-over-month growth.
	Overview(ctx context.Context, requestor domain.Requestor) (*domain.AnalyticsOverview, error)

	// DailyRevenueSeries returns exactly days entries covering the
	// trailing window ending today, zero-filled for days without
	// transactions.
	DailyRevenueSeries(ctx context.Context, requestor domain.Requestor, days int) ([]domain.RevenuePoint, error)

	// TopTenants ranks tenants by net revenue descending.
	TopTenants(ctx context.Context, requestor domain.Requestor, limit int) ([]domain.TenantRanking, error)

	// TopProducts ranks products by revenue descending, falling back to
	// item snapshot names for deleted products.
	TopProducts(ctx context.Context, requestor domain.Requestor, limit int) ([]domain.ProductRanking, error)

	// TypeDistribution returns per-type counts and sums.
	TypeDistribution(ctx context.Context, requestor domain.Requestor) ([]domain.TypeBreakdown, error)
}

// VisitorSvcFacade records and reports foot-traffic events. RecordVisit
// is the public scanner target; the reports are admin-restricted.
type VisitorSvcFacade interface {
	RecordVisit(ctx context.Context, visit domain.Visit) error
	VisitorOverview(ctx context.Context, requestor domain.Requestor) (*domain.VisitorOverview, error)
	VisitorsByDay(ctx context.Context, requestor domain.Requestor, days int) ([]domain.VisitorPoint, error)
}
