package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VisitorRepository ---
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitorRepository) CountVisits(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitorRepository) CountVisitsOn(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitorRepository) VisitCountsByDay(ctx context.Context, from, to time.Time) (map[time.Time]int64, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Time]int64), args.Error(1)
}

// --- Test Suite ---
type VisitorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVisitorRepository
	service  portssvc.VisitorSvcFacade

	admin  domain.Requestor
	tenant domain.Requestor
}

func (suite *VisitorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVisitorRepository)
	suite.service = services.NewVisitorService(suite.mockRepo)
	suite.admin = domain.Requestor{ID: "admin-1", Role: domain.RoleAdmin}
	suite.tenant = domain.Requestor{ID: "tenant-1", Role: domain.RoleTenant}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// --- RecordVisit ---

func (suite *VisitorServiceTestSuite) TestRecordVisit_DefaultsDateToToday() {
	ctx := context.Background()
	today := midnight(time.Now())

	suite.mockRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.VisitDate.Equal(today) && !v.CreatedAt.IsZero()
	})).Return(nil).Once()

	err := suite.service.RecordVisit(ctx, domain.Visit{})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VisitorServiceTestSuite) TestRecordVisit_TruncatesExplicitDate() {
	ctx := context.Background()
	tenantID := "tenant-1"
	given := time.Date(2025, 6, 10, 15, 42, 3, 0, time.Local)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	suite.mockRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.VisitDate.Equal(want) && v.TenantID != nil && *v.TenantID == tenantID
	})).Return(nil).Once()

	err := suite.service.RecordVisit(ctx, domain.Visit{
		VisitDate: given,
		TenantID:  &tenantID,
		Metadata:  map[string]string{"source": "qr"},
	})

	suite.Require().NoError(err)
}

func (suite *VisitorServiceTestSuite) TestRecordVisit_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("SaveVisit", ctx, mock.AnythingOfType("domain.Visit")).Return(apperrors.NewInternalServerError("db down")).Once()

	err := suite.service.RecordVisit(ctx, domain.Visit{})

	suite.Require().Error(err)
}

// --- VisitorOverview ---

func (suite *VisitorServiceTestSuite) TestVisitorOverview_Success() {
	ctx := context.Background()
	today := midnight(time.Now())

	suite.mockRepo.On("CountVisits", ctx).Return(int64(240), nil).Once()
	suite.mockRepo.On("CountVisitsOn", ctx, today).Return(int64(12), nil).Once()

	overview, err := suite.service.VisitorOverview(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(int64(240), overview.TotalVisitors)
	suite.Equal(int64(12), overview.VisitorsToday)
}

func (suite *VisitorServiceTestSuite) TestVisitorOverview_NonAdminForbidden() {
	ctx := context.Background()

	overview, err := suite.service.VisitorOverview(ctx, suite.tenant)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(overview)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountVisits", mock.Anything)
}

// --- VisitorsByDay ---

func (suite *VisitorServiceTestSuite) TestVisitorsByDay_ZeroFillsMissingDays() {
	ctx := context.Background()
	days := 7
	to := midnight(time.Now())
	from := to.AddDate(0, 0, -(days - 1))

	counts := map[time.Time]int64{
		to:                  9,
		to.AddDate(0, 0, -2): 4,
	}

	suite.mockRepo.On("VisitCountsByDay", ctx, from, to).Return(counts, nil).Once()

	points, err := suite.service.VisitorsByDay(ctx, suite.admin, days)

	suite.Require().NoError(err)
	suite.Require().Len(points, days)
	suite.Equal(from, points[0].Date)
	suite.Equal(to, points[6].Date)
	suite.Equal(int64(9), points[6].Count)
	suite.Equal(int64(4), points[4].Count)
	suite.Zero(points[0].Count)

	for _, p := range points {
		suite.Equal(p.Date.Format("Mon"), p.Label)
	}
}

func (suite *VisitorServiceTestSuite) TestVisitorsByDay_InvalidLength() {
	ctx := context.Background()

	points, err := suite.service.VisitorsByDay(ctx, suite.admin, 0)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(points)
	suite.mockRepo.AssertNotCalled(suite.T(), "VisitCountsByDay", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestVisitorService(t *testing.T) {
	suite.Run(t, new(VisitorServiceTestSuite))
}
