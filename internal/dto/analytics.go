package dto

import (
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsOverviewResponse is the month-over-month dashboard summary.
type AnalyticsOverviewResponse struct {
	TotalRevenue      int64           `json:"totalRevenue"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalTenants      int64           `json:"totalTenants"`
	ActiveTenants     int64           `json:"activeTenants"`
	RevenueGrowth     decimal.Decimal `json:"revenueGrowth"`
	TransactionGrowth decimal.Decimal `json:"transactionGrowth"`
}

// RevenuePointResponse is one bucket of the daily revenue series.
type RevenuePointResponse struct {
	Date         string `json:"date"`
	Label        string `json:"label"`
	Revenue      int64  `json:"revenue"`
	Transactions int64  `json:"transactions"`
}

// TenantRankingResponse is one row of the top-tenants leaderboard.
type TenantRankingResponse struct {
	TenantID         string `json:"tenantId"`
	BusinessName     string `json:"businessName"`
	FullName         string `json:"fullName"`
	TotalRevenue     int64  `json:"totalRevenue"`
	TransactionCount int64  `json:"transactionCount"`
}

// ProductRankingResponse is one row of the top-products leaderboard.
type ProductRankingResponse struct {
	ProductID    *int64 `json:"productId,omitempty"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	BusinessName string `json:"businessName"`
	TotalSold    int64  `json:"totalSold"`
	TotalRevenue int64  `json:"totalRevenue"`
}

// TypeBreakdownResponse is one slice of the income/expense split.
type TypeBreakdownResponse struct {
	Type        string `json:"type"`
	Count       int64  `json:"count"`
	TotalAmount int64  `json:"totalAmount"`
}

// VisitorOverviewResponse summarises landing page traffic.
type VisitorOverviewResponse struct {
	TotalVisitors int64 `json:"totalVisitors"`
	VisitorsToday int64 `json:"visitorsToday"`
}

// VisitorPointResponse is one day of the visit series.
type VisitorPointResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ToAnalyticsOverviewResponse converts the overview aggregate.
func ToAnalyticsOverviewResponse(o domain.AnalyticsOverview) AnalyticsOverviewResponse {
	return AnalyticsOverviewResponse{
		TotalRevenue:      o.TotalRevenue,
		TotalTransactions: o.TotalTransactions,
		TotalTenants:      o.TotalTenants,
		ActiveTenants:     o.ActiveTenants,
		RevenueGrowth:     o.RevenueGrowth,
		TransactionGrowth: o.TransactionGrowth,
	}
}

// ToRevenuePointResponses converts the zero-filled daily series.
func ToRevenuePointResponses(points []domain.RevenuePoint) []RevenuePointResponse {
	responses := make([]RevenuePointResponse, len(points))
	for i, p := range points {
		responses[i] = RevenuePointResponse{
			Date:         p.Date.Format("2006-01-02"),
			Label:        p.Label,
			Revenue:      p.Revenue,
			Transactions: p.Transactions,
		}
	}
	return responses
}

// ToTenantRankingResponses converts the top-tenants leaderboard.
func ToTenantRankingResponses(rows []domain.TenantRanking) []TenantRankingResponse {
	responses := make([]TenantRankingResponse, len(rows))
	for i, r := range rows {
		responses[i] = TenantRankingResponse{
			TenantID:         r.TenantID,
			BusinessName:     r.BusinessName,
			FullName:         r.FullName,
			TotalRevenue:     r.TotalRevenue,
			TransactionCount: r.TransactionCount,
		}
	}
	return responses
}

// ToProductRankingResponses converts the top-products leaderboard.
func ToProductRankingResponses(rows []domain.ProductRanking) []ProductRankingResponse {
	responses := make([]ProductRankingResponse, len(rows))
	for i, r := range rows {
		responses[i] = ProductRankingResponse{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			Category:     r.Category,
			BusinessName: r.BusinessName,
			TotalSold:    r.TotalSold,
			TotalRevenue: r.TotalRevenue,
		}
	}
	return responses
}

// ToTypeBreakdownResponses converts the type distribution rows.
func ToTypeBreakdownResponses(rows []domain.TypeBreakdown) []TypeBreakdownResponse {
	responses := make([]TypeBreakdownResponse, len(rows))
	for i, r := range rows {
		responses[i] = TypeBreakdownResponse{
			Type:        string(r.Type),
			Count:       r.Count,
			TotalAmount: r.TotalAmount,
		}
	}
	return responses
}

// ToVisitorOverviewResponse converts the visit counters.
func ToVisitorOverviewResponse(o domain.VisitorOverview) VisitorOverviewResponse {
	return VisitorOverviewResponse{TotalVisitors: o.TotalVisitors, VisitorsToday: o.VisitorsToday}
}

// ToVisitorPointResponses converts the daily visit series.
func ToVisitorPointResponses(points []domain.VisitorPoint) []VisitorPointResponse {
	responses := make([]VisitorPointResponse, len(points))
	for i, p := range points {
		responses[i] = VisitorPointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Label: p.Label,
			Count: p.Count,
		}
	}
	return responses
}
