package repositories

import (
	"context"
	"time"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
)

// VisitorRepositoryFacade provides access to foot-traffic events.
type VisitorRepositoryFacade interface {
	// SaveVisit records one scanner event.
	SaveVisit(ctx context.Context, visit domain.Visit) error

	// CountVisits is the lifetime visit total.
	CountVisits(ctx context.Context) (int64, error)

	// CountVisitsOn counts visits recorded on one calendar date.
	CountVisitsOn(ctx context.Context, date time.Time) (int64, error)

	// VisitCountsByDay returns per-day visit counts for the inclusive
	// date range. Days without visits are absent from the result.
	VisitCountsByDay(ctx context.Context, from, to time.Time) (map[time.Time]int64, error)
}
