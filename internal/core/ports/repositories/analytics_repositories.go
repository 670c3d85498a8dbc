package repositories

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// AnalyticsRepository provides the read-only aggregates behind the admin
// dashboard. Every query excludes soft-deleted transactions.
type AnalyticsRepository interface {
	// GetRevenueByDay returns per-day income/expense/count aggregates for
	// the inclusive date range. Days without transactions are absent; the
	// service layer zero-fills the window.
	GetRevenueByDay(ctx context.Context, from, to time.Time) ([]domain.DayTotal, error)

	// GetPeriodTotals returns net revenue (income minus expense) and the
	// transaction count for the inclusive date range. Zero bounds leave
	// that side of the range open.
	GetPeriodTotals(ctx context.Context, from, to time.Time) (revenue int64, transactions int64, err error)

	// GetTopTenants returns up to limit tenants ranked by net revenue
	// descending, ties broken by earliest first transaction.
	GetTopTenants(ctx context.Context, limit int) ([]domain.TenantRanking, error)

	// GetTopProducts returns up to limit products ranked by revenue
	// descending, using the line items' snapshot name when the catalog
	// entry no longer resolves.
	GetTopProducts(ctx context.Context, limit int) ([]domain.ProductRanking, error)

	// GetTypeDistribution returns the per-type transaction count and sum.
	GetTypeDistribution(ctx context.Context) ([]domain.TypeBreakdown, error)

	// CountTenants counts non-deleted vendor profiles.
	CountTenants(ctx context.Context) (int64, error)

	// CountActiveTenants counts distinct tenants with at least one
	// transaction dated on or after since.
	CountActiveTenants(ctx context.Context, since time.Time) (int64, error)
}
