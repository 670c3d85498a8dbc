package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsOverview is the admin dashboard headline block. Growth figures
// compare the current calendar month against the previous one, as
// percentages rounded to two places.
type AnalyticsOverview struct {
	TotalRevenue      int64           `json:"totalRevenue"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalTenants      int64           `json:"totalTenants"`
	ActiveTenants     int64           `json:"activeTenants"`
	RevenueGrowth     decimal.Decimal `json:"revenueGrowth"`
	TransactionGrowth decimal.Decimal `json:"transactionGrowth"`
}

// DayTotal is the raw per-day aggregate the store returns for a date range.
// Days with no transactions are absent; the service layer zero-fills them.
type DayTotal struct {
	Date         time.Time
	Income       int64
	Expense      int64
	Transactions int64
}

// RevenuePoint is one day in the dashboard revenue series. Revenue is
// income minus expense for that day across every tenant.
type RevenuePoint struct {
	Date         time.Time `json:"date"`
	Label        string    `json:"label"`
	Revenue      int64     `json:"revenue"`
	Transactions int64     `json:"transactions"`
}

// TenantRanking is one row of the top-tenants leaderboard.
type TenantRanking struct {
	TenantID         string `json:"tenantID"`
	BusinessName     string `json:"businessName"`
	FullName         string `json:"fullName"`
	TotalRevenue     int64  `json:"totalRevenue"`
	TransactionCount int64  `json:"transactionCount"`
}

// ProductRanking is one row of the top-products leaderboard. ProductName
// falls back to the line items' snapshot name when the catalog entry has
// been deleted, so rankings never fail on a dangling reference.
type ProductRanking struct {
	ProductID    *int64 `json:"productID,omitempty"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	BusinessName string `json:"businessName"`
	TotalSold    int64  `json:"totalSold"`
	TotalRevenue int64  `json:"totalRevenue"`
}

// TypeBreakdown is the per-type slice of the transaction donut chart.
type TypeBreakdown struct {
	Type        TransactionType `json:"type"`
	Count       int64           `json:"count"`
	TotalAmount int64           `json:"totalAmount"`
}
