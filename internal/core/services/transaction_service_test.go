package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/core/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionWithTenant, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.TransactionWithTenant), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) GetTransactionStats(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionStats, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.TransactionStats), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.TransactionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetail), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByTenant(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, id int64, deletedAt time.Time) error {
	args := m.Called(ctx, id, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade

	admin  domain.Requestor
	tenant domain.Requestor
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.admin = domain.Requestor{ID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.tenant = domain.Requestor{ID: uuid.NewString(), Role: domain.RoleTenant}
}

// --- ListTransactions ---

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesNormalizedFilterToRepo() {
	ctx := context.Background()
	raw := domain.TransactionFilter{Search: "  kopi  "}
	expected := raw.Normalize()
	rows := []domain.TransactionWithTenant{
		{Transaction: domain.Transaction{ID: 1, Type: domain.TypeIncome, TotalAmount: 5000}},
	}

	suite.mockRepo.On("ListTransactions", ctx, expected).Return(rows, int64(1), nil).Once()

	got, total, err := suite.service.ListTransactions(ctx, suite.admin, raw)

	suite.Require().NoError(err)
	suite.Equal(rows, got)
	suite.Equal(int64(1), total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidFilterSkipsRepo() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Page: -1}

	got, total, err := suite.service.ListTransactions(ctx, suite.admin, filter)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(got)
	suite.Zero(total)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NonAdminForbidden() {
	ctx := context.Background()

	got, total, err := suite.service.ListTransactions(ctx, suite.tenant, domain.TransactionFilter{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(got)
	suite.Zero(total)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyResultIsNotNil() {
	ctx := context.Background()
	filter := domain.TransactionFilter{}.Normalize()

	suite.mockRepo.On("ListTransactions", ctx, filter).Return(nil, int64(0), nil).Once()

	got, total, err := suite.service.ListTransactions(ctx, suite.admin, domain.TransactionFilter{})

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
	suite.Zero(total)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	filter := domain.TransactionFilter{}.Normalize()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListTransactions", ctx, filter).Return(nil, int64(0), expectedErr).Once()

	got, _, err := suite.service.ListTransactions(ctx, suite.admin, domain.TransactionFilter{})

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(got)
}

// --- GetTransactionStats ---

func (suite *TransactionServiceTestSuite) TestGetTransactionStats_SharesFilterWithListing() {
	ctx := context.Background()
	raw := domain.TransactionFilter{
		TenantID: suite.tenant.ID,
		Type:     domain.TypeExpense,
		Page:     4,
		PageSize: 50,
	}
	expected := raw.Normalize()
	stats := domain.TransactionStats{
		TotalIncome:       120000,
		TotalExpense:      45000,
		ActiveTenants:     3,
		TotalTransactions: 17,
	}

	suite.mockRepo.On("ListTransactions", ctx, expected).Return([]domain.TransactionWithTenant{}, int64(17), nil).Once()
	suite.mockRepo.On("GetTransactionStats", ctx, expected).Return(stats, nil).Once()

	_, _, err := suite.service.ListTransactions(ctx, suite.admin, raw)
	suite.Require().NoError(err)

	got, err := suite.service.GetTransactionStats(ctx, suite.admin, raw)

	suite.Require().NoError(err)
	suite.Equal(stats, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionStats_NonAdminForbidden() {
	ctx := context.Background()

	_, err := suite.service.GetTransactionStats(ctx, suite.tenant, domain.TransactionFilter{})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetTransactionStats", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionStats_InvalidFilter() {
	ctx := context.Background()
	filter := domain.TransactionFilter{SortBy: "note", Page: 1, PageSize: 10}

	_, err := suite.service.GetTransactionStats(ctx, suite.admin, filter)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetTransactionStats", mock.Anything, mock.Anything)
}

// --- GetTransactionByID ---

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	detail := &domain.TransactionDetail{
		Transaction: domain.Transaction{ID: 7, Type: domain.TypeIncome, TotalAmount: 30000},
		Items:       []domain.TransactionItem{{ID: 1, TransactionID: 7, ProductName: "Es Teh", Quantity: 6, UnitPrice: 5000, Subtotal: 30000}},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(7)).Return(detail, nil).Once()

	got, err := suite.service.GetTransactionByID(ctx, suite.admin, 7)

	suite.Require().NoError(err)
	suite.Equal(detail, got)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetTransactionByID(ctx, suite.admin, 99)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NonAdminForbidden() {
	ctx := context.Background()

	_, err := suite.service.GetTransactionByID(ctx, suite.tenant, 7)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

// --- ListTenantTransactions ---

func (suite *TransactionServiceTestSuite) TestListTenantTransactions_TenantReadsOwn() {
	ctx := context.Background()
	txns := []domain.Transaction{{ID: 1, TenantID: suite.tenant.ID}}

	suite.mockRepo.On("FindTransactionsByTenant", ctx, suite.tenant.ID).Return(txns, nil).Once()

	got, err := suite.service.ListTenantTransactions(ctx, suite.tenant, suite.tenant.ID)

	suite.Require().NoError(err)
	suite.Equal(txns, got)
}

func (suite *TransactionServiceTestSuite) TestListTenantTransactions_TenantCannotReadOthers() {
	ctx := context.Background()
	otherID := uuid.NewString()

	got, err := suite.service.ListTenantTransactions(ctx, suite.tenant, otherID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionsByTenant", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTenantTransactions_AdminReadsAnyone() {
	ctx := context.Background()
	otherID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsByTenant", ctx, otherID).Return([]domain.Transaction{}, nil).Once()

	got, err := suite.service.ListTenantTransactions(ctx, suite.admin, otherID)

	suite.Require().NoError(err)
	suite.NotNil(got)
}

// --- CreateTransaction ---

func validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:            "INCOME",
		TransactionDate: "2025-06-10",
		Items: []dto.CreateTransactionItemRequest{
			{ProductName: "Es Teh", Quantity: 3, UnitPrice: 5000},
			{ProductName: "Nasi Goreng", Quantity: 1, UnitPrice: 20000},
		},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RecomputesTotals() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("SaveTransaction", ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.TenantID == suite.tenant.ID &&
				txn.Type == domain.TypeIncome &&
				txn.TotalAmount == 35000
		}),
		mock.MatchedBy(func(items []domain.TransactionItem) bool {
			return len(items) == 2 && items[0].Subtotal == 15000 && items[1].Subtotal == 20000
		}),
	).Return(&domain.Transaction{ID: 11, TenantID: suite.tenant.ID, TotalAmount: 35000}, nil).Once()

	saved, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.Equal(int64(11), saved.ID)
	suite.Equal(int64(35000), saved.TotalAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadType() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Type = "TRANSFER"

	saved, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := validCreateRequest()
	req.TransactionDate = "10/06/2025"

	_, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_FutureDate() {
	ctx := context.Background()
	req := validCreateRequest()
	req.TransactionDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	_, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TodayAcceptedEastOfUTC() {
	// In a zone well ahead of UTC the local date can be ahead of the UTC
	// date; recording "today" must still pass the future-date check.
	restore := time.Local
	time.Local = time.FixedZone("UTC+14", 14*60*60)
	defer func() { time.Local = restore }()

	ctx := context.Background()
	req := validCreateRequest()
	req.TransactionDate = time.Now().Format("2006-01-02")

	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything, mock.Anything).
		Return(&domain.Transaction{ID: 12, TenantID: suite.tenant.ID, TotalAmount: 35000}, nil).Once()

	saved, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NoItems() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Items = nil

	_, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadItemRejected() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Items[1].Quantity = 0

	_, err := suite.service.CreateTransaction(ctx, suite.tenant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateTransaction ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	note := "corrected amount"
	newAmount := int64(42000)
	existing := &domain.TransactionDetail{
		Transaction: domain.Transaction{
			ID:              5,
			TenantID:        suite.tenant.ID,
			Type:            domain.TypeIncome,
			TotalAmount:     35000,
			TransactionDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ID == 5 &&
			txn.TotalAmount == newAmount &&
			txn.Note != nil && *txn.Note == note &&
			txn.Type == domain.TypeIncome
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.admin, 5, dto.UpdateTransactionRequest{
		TotalAmount: &newAmount,
		Note:        &note,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newAmount, updated.TotalAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NonAdminForbidden() {
	ctx := context.Background()

	_, err := suite.service.UpdateTransaction(ctx, suite.tenant, 5, dto.UpdateTransactionRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NegativeAmount() {
	ctx := context.Background()
	bad := int64(-1)
	existing := &domain.TransactionDetail{Transaction: domain.Transaction{ID: 5}}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.admin, 5, dto.UpdateTransactionRequest{TotalAmount: &bad})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

// --- DeleteTransaction ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	existing := &domain.TransactionDetail{Transaction: domain.Transaction{ID: 5}}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("MarkTransactionDeleted", ctx, int64(5), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.admin, 5)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_MissingRowIsNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.admin, 99)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkTransactionDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NonAdminForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteTransaction(ctx, suite.tenant, 5)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
