package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVisitorRepository struct {
	BaseRepository
}

// newPgxVisitorRepository creates a new repository for foot-traffic data.
func newPgxVisitorRepository(pool *pgxpool.Pool) portsrepo.VisitorRepositoryFacade {
	return &PgxVisitorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VisitorRepositoryFacade = (*PgxVisitorRepository)(nil)

// SaveVisit records one scanner event.
func (r *PgxVisitorRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	query := `
		INSERT INTO visitors (visit_date, tenant_id, metadata, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, visit.VisitDate, visit.TenantID, visit.Metadata, visit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save visit: %w", err)
	}
	return nil
}

// CountVisits is the lifetime visit total.
func (r *PgxVisitorRepository) CountVisits(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

// CountVisitsOn counts visits recorded on one calendar date.
func (r *PgxVisitorRepository) CountVisitsOn(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM visitors WHERE visit_date = $1;`
	if err := r.Pool.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count visits on %s: %w", date.Format("2006-01-02"), err)
	}
	return count, nil
}

// VisitCountsByDay returns per-day visit counts for the inclusive range.
func (r *PgxVisitorRepository) VisitCountsByDay(ctx context.Context, from, to time.Time) (map[time.Time]int64, error) {
	query := `
		SELECT visit_date, COUNT(*)
		FROM visitors
		WHERE visit_date BETWEEN $1 AND $2
		GROUP BY visit_date;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query visit counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[time.Time]int64)
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan visit count: %w", err)
		}
		// Normalize to midnight local so lookups by date key match.
		counts[time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visit counts: %w", err)
	}
	return counts, nil
}
