package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
)

// visitorService records public scanner events and serves the admin
// traffic reports.
type visitorService struct {
	BaseService
	visitorRepo portsrepo.VisitorRepositoryFacade
}

// NewVisitorService creates a new visitor service.
func NewVisitorService(visitorRepo portsrepo.VisitorRepositoryFacade) portssvc.VisitorSvcFacade {
	return &visitorService{visitorRepo: visitorRepo}
}

var _ portssvc.VisitorSvcFacade = (*visitorService)(nil)

func (s *visitorService) RecordVisit(ctx context.Context, visit domain.Visit) error {
	now := time.Now()
	if visit.VisitDate.IsZero() {
		visit.VisitDate = dateOnly(now)
	} else {
		visit.VisitDate = dateOnly(visit.VisitDate)
	}
	visit.CreatedAt = now

	if err := s.visitorRepo.SaveVisit(ctx, visit); err != nil {
		s.LogError(ctx, err, "failed to record visit")
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (s *visitorService) VisitorOverview(ctx context.Context, requestor domain.Requestor) (*domain.VisitorOverview, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}

	total, err := s.visitorRepo.CountVisits(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to count visits")
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	today, err := s.visitorRepo.CountVisitsOn(ctx, dateOnly(time.Now()))
	if err != nil {
		s.LogError(ctx, err, "failed to count today's visits")
		return nil, fmt.Errorf("failed to count today's visits: %w", err)
	}

	return &domain.VisitorOverview{TotalVisitors: total, VisitorsToday: today}, nil
}

func (s *visitorService) VisitorsByDay(ctx context.Context, requestor domain.Requestor, days int) ([]domain.VisitorPoint, error) {
	if err := s.RequireAdmin(ctx, requestor); err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, apperrors.NewValidationError("series length must be at least one day")
	}

	to := dateOnly(time.Now())
	from := to.AddDate(0, 0, -(days - 1))

	counts, err := s.visitorRepo.VisitCountsByDay(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to load visit series")
		return nil, fmt.Errorf("failed to load visit series: %w", err)
	}

	points := make([]domain.VisitorPoint, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		points = append(points, domain.VisitorPoint{
			Date:  d,
			Label: d.Format("Mon"),
			Count: counts[d],
		})
	}
	return points, nil
}
