package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for dashboard aggregates.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

// GetRevenueByDay returns per-day aggregates for the inclusive range.
func (r *PgxAnalyticsRepository) GetRevenueByDay(ctx context.Context, from, to time.Time) ([]domain.DayTotal, error) {
	query := `
		SELECT transaction_date,
		       COALESCE(SUM(CASE WHEN type = 'INCOME' THEN total_amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN total_amount ELSE 0 END), 0),
		       COUNT(*)
		FROM transactions
		WHERE deleted_at IS NULL AND transaction_date BETWEEN $1 AND $2
		GROUP BY transaction_date
		ORDER BY transaction_date;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily revenue: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DayTotal, error) {
		var total domain.DayTotal
		err := row.Scan(&total.Date, &total.Income, &total.Expense, &total.Transactions)
		return total, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily revenue: %w", err)
	}
	return totals, nil
}

// GetPeriodTotals returns net revenue and transaction count for the range.
// Zero-valued bounds leave that side open.
func (r *PgxAnalyticsRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (int64, int64, error) {
	clauses := []string{"deleted_at IS NULL"}
	args := []any{}
	if !from.IsZero() {
		args = append(args, from)
		clauses = append(clauses, fmt.Sprintf("transaction_date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		clauses = append(clauses, fmt.Sprintf("transaction_date <= $%d", len(args)))
	}

	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'INCOME' THEN total_amount ELSE -total_amount END), 0),
		       COUNT(*)
		FROM transactions
		WHERE ` + strings.Join(clauses, " AND ")

	var revenue, transactions int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&revenue, &transactions); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate period totals: %w", err)
	}
	return revenue, transactions, nil
}

// GetTopTenants ranks tenants by net revenue descending.
func (r *PgxAnalyticsRepository) GetTopTenants(ctx context.Context, limit int) ([]domain.TenantRanking, error) {
	query := `
		SELECT p.id, COALESCE(p.business_name, ''), p.full_name,
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.total_amount ELSE -t.total_amount END), 0) AS revenue,
		       COUNT(t.id)
		FROM profiles p
		JOIN transactions t ON t.tenant_id = p.id AND t.deleted_at IS NULL
		WHERE p.deleted_at IS NULL
		GROUP BY p.id, p.business_name, p.full_name
		ORDER BY revenue DESC, MIN(t.created_at) ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top tenants: %w", err)
	}
	defer rows.Close()

	rankings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TenantRanking, error) {
		var ranking domain.TenantRanking
		err := row.Scan(
			&ranking.TenantID,
			&ranking.BusinessName,
			&ranking.FullName,
			&ranking.TotalRevenue,
			&ranking.TransactionCount,
		)
		return ranking, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top tenants: %w", err)
	}
	return rankings, nil
}

// GetTopProducts ranks products by income revenue descending. Grouping is
// by the item snapshot name so lines for deleted catalog entries still
// rank; pr resolves extra detail when the product row survives.
func (r *PgxAnalyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domain.ProductRanking, error) {
	query := `
		SELECT MAX(i.product_id), i.product_name,
		       COALESCE(MAX(pr.category), ''), COALESCE(MAX(p.business_name), ''),
		       COALESCE(SUM(i.quantity), 0), COALESCE(SUM(i.subtotal), 0) AS revenue
		FROM transaction_items i
		JOIN transactions t ON t.id = i.transaction_id AND t.deleted_at IS NULL AND t.type = 'INCOME'
		LEFT JOIN products pr ON pr.id = i.product_id
		LEFT JOIN profiles p ON p.id = t.tenant_id AND p.deleted_at IS NULL
		GROUP BY i.product_name
		ORDER BY revenue DESC, MIN(i.created_at) ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	rankings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductRanking, error) {
		var ranking domain.ProductRanking
		err := row.Scan(
			&ranking.ProductID,
			&ranking.ProductName,
			&ranking.Category,
			&ranking.BusinessName,
			&ranking.TotalSold,
			&ranking.TotalRevenue,
		)
		return ranking, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top products: %w", err)
	}
	return rankings, nil
}

// GetTypeDistribution returns the per-type transaction count and sum.
func (r *PgxAnalyticsRepository) GetTypeDistribution(ctx context.Context) ([]domain.TypeBreakdown, error) {
	query := `
		SELECT type, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE deleted_at IS NULL
		GROUP BY type
		ORDER BY type;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query type distribution: %w", err)
	}
	defer rows.Close()

	breakdown, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TypeBreakdown, error) {
		var slice domain.TypeBreakdown
		err := row.Scan(&slice.Type, &slice.Count, &slice.TotalAmount)
		return slice, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan type distribution: %w", err)
	}
	return breakdown, nil
}

// CountTenants counts non-deleted vendor profiles.
func (r *PgxAnalyticsRepository) CountTenants(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM profiles WHERE role = $1 AND deleted_at IS NULL;`
	if err := r.Pool.QueryRow(ctx, query, string(domain.RoleTenant)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tenants: %w", err)
	}
	return count, nil
}

// CountActiveTenants counts distinct tenants with a transaction on or
// after since.
func (r *PgxAnalyticsRepository) CountActiveTenants(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(DISTINCT tenant_id)
		FROM transactions
		WHERE deleted_at IS NULL AND transaction_date >= $1;
	`
	if err := r.Pool.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active tenants: %w", err)
	}
	return count, nil
}
