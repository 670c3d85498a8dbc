package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/utils/analytics"
)

const activeTenantWindow = 30 * 24 * time.Hour

// analyticsService builds the admin dashboard rollups from the analytics
// repository's raw aggregates.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository) portssvc.AnalyticsSvcFacade {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// monthStart truncates t to midnight on the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// dateOnly truncates t to midnight.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// localDate pins t's calendar date to midnight in the process timezone.
// DATE columns scan as midnight UTC, so a key built from the raw scanned
// value would never match one built from time.Now.
func localDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func (s *analyticsService) Overview(ctx context.Context, requestor domain.Requestor) (*domain.AnalyticsOverview, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	now := time.Now()
	currentStart := monthStart(now)
	previousStart := monthStart(currentStart.AddDate(0, 0, -1))
	previousEnd := currentStart.AddDate(0, 0, -1)

	totalRevenue, totalTxns, err := s.analyticsRepo.GetPeriodTotals(ctx, time.Time{}, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "failed to load lifetime totals")
		return nil, fmt.Errorf("failed to load lifetime totals: %w", err)
	}

	currentRevenue, currentTxns, err := s.analyticsRepo.GetPeriodTotals(ctx, currentStart, dateOnly(now))
	if err != nil {
		s.LogError(ctx, err, "failed to load current month totals")
		return nil, fmt.Errorf("failed to load current month totals: %w", err)
	}

	previousRevenue, previousTxns, err := s.analyticsRepo.GetPeriodTotals(ctx, previousStart, previousEnd)
	if err != nil {
		s.LogError(ctx, err, "failed to load previous month totals")
		return nil, fmt.Errorf("failed to load previous month totals: %w", err)
	}

	totalTenants, err := s.analyticsRepo.CountTenants(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to count tenants")
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}

	activeTenants, err := s.analyticsRepo.CountActiveTenants(ctx, now.Add(-activeTenantWindow))
	if err != nil {
		s.LogError(ctx, err, "failed to count active tenants")
		return nil, fmt.Errorf("failed to count active tenants: %w", err)
	}

	return &domain.AnalyticsOverview{
		TotalRevenue:      totalRevenue,
		TotalTransactions: totalTxns,
		TotalTenants:      totalTenants,
		ActiveTenants:     activeTenants,
		RevenueGrowth:     analytics.GrowthPercent(currentRevenue, previousRevenue),
		TransactionGrowth: analytics.GrowthPercent(currentTxns, previousTxns),
	}, nil
}

func (s *analyticsService) DailyRevenueSeries(ctx context.Context, requestor domain.Requestor, days int) ([]domain.RevenuePoint, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, apperrors.NewValidationError("series length must be at least one day")
	}

	to := dateOnly(time.Now())
	from := to.AddDate(0, 0, -(days - 1))

	totals, err := s.analyticsRepo.GetRevenueByDay(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to load daily revenue")
		return nil, fmt.Errorf("failed to load daily revenue: %w", err)
	}

	byDay := make(map[time.Time]domain.DayTotal, len(totals))
	for _, t := range totals {
		byDay[localDate(t.Date)] = t
	}

	// Zero-fill so the chart always gets exactly one point per day.
	points := make([]domain.RevenuePoint, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		point := domain.RevenuePoint{
			Date:  d,
			Label: d.Format("Mon"),
		}
		if total, ok := byDay[d]; ok {
			point.Revenue = total.Income - total.Expense
			point.Transactions = total.Transactions
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *analyticsService) TopTenants(ctx context.Context, requestor domain.Requestor, limit int) ([]domain.TenantRanking, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, apperrors.NewValidationError("limit must be at least 1")
	}

	rankings, err := s.analyticsRepo.GetTopTenants(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "failed to load top tenants")
		return nil, fmt.Errorf("failed to load top tenants: %w", err)
	}
	if rankings == nil {
		rankings = []domain.TenantRanking{}
	}
	return rankings, nil
}

func (s *analyticsService) TopProducts(ctx context.Context, requestor domain.Requestor, limit int) ([]domain.ProductRanking, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, apperrors.NewValidationError("limit must be at least 1")
	}

	rankings, err := s.analyticsRepo.GetTopProducts(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "failed to load top products")
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}
	if rankings == nil {
		rankings = []domain.ProductRanking{}
	}
	return rankings, nil
}

func (s *analyticsService) TypeDistribution(ctx context.Context, requestor domain.Requestor) ([]domain.TypeBreakdown, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	breakdown, err := s.analyticsRepo.GetTypeDistribution(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load type distribution")
		return nil, fmt.Errorf("failed to load type distribution: %w", err)
	}
	if breakdown == nil {
		breakdown = []domain.TypeBreakdown{}
	}
	return breakdown, nil
}
