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
	"github.com/bazarkas/cashflow_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantOptions(ctx context.Context) ([]domain.TenantOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantOption), args.Error(1)
}

func (m *MockTenantRepository) FindTenantRevenueSummaries(ctx context.Context) ([]domain.TenantRevenueSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantRevenueSummary), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) MarkTenantDeleted(ctx context.Context, id string, deletedAt time.Time) error {
	args := m.Called(ctx, id, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTenantRepository
	service  portssvc.TenantSvcFacade

	admin  domain.Requestor
	tenant domain.Requestor
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTenantRepository)
	suite.service = services.NewTenantService(suite.mockRepo)
	suite.admin = domain.Requestor{ID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.tenant = domain.Requestor{ID: uuid.NewString(), Role: domain.RoleTenant}
}

// --- Authenticate ---

func (suite *TenantServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "s3cret-pass"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.Tenant{
		ID:           suite.tenant.ID,
		Email:        "vendor@example.com",
		PasswordHash: &hash,
		Role:         domain.RoleTenant,
	}

	suite.mockRepo.On("FindTenantByEmail", ctx, "vendor@example.com").Return(stored, nil).Once()

	got, err := suite.service.Authenticate(ctx, "  Vendor@Example.COM ", password)

	suite.Require().NoError(err)
	suite.Equal(stored, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindTenantByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost@example.com", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *TenantServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	stored := &domain.Tenant{Email: "vendor@example.com", PasswordHash: &hash}

	suite.mockRepo.On("FindTenantByEmail", ctx, "vendor@example.com").Return(stored, nil).Once()

	got, err := suite.service.Authenticate(ctx, "vendor@example.com", "wrong-password")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *TenantServiceTestSuite) TestAuthenticate_GoogleOnlyAccount() {
	ctx := context.Background()
	stored := &domain.Tenant{Email: "vendor@example.com", PasswordHash: nil, AuthProvider: domain.ProviderGoogle}

	suite.mockRepo.On("FindTenantByEmail", ctx, "vendor@example.com").Return(stored, nil).Once()

	got, err := suite.service.Authenticate(ctx, "vendor@example.com", "any")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

// --- Listings ---

func (suite *TenantServiceTestSuite) TestListTenants_NonAdminForbidden() {
	ctx := context.Background()

	got, err := suite.service.ListTenants(ctx, suite.tenant)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTenants", mock.Anything)
}

func (suite *TenantServiceTestSuite) TestListTenants_EmptyResultIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("FindTenants", ctx).Return(nil, nil).Once()

	got, err := suite.service.ListTenants(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TenantServiceTestSuite) TestListTenantRevenueSummaries_Success() {
	ctx := context.Background()
	summaries := []domain.TenantRevenueSummary{
		{TenantID: "t-1", TotalIncome: 90000, TotalExpense: 20000, NetRevenue: 70000, TotalTransactions: 7},
	}

	suite.mockRepo.On("FindTenantRevenueSummaries", ctx).Return(summaries, nil).Once()

	got, err := suite.service.ListTenantRevenueSummaries(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(summaries, got)
}

// --- CreateTenant ---

func (suite *TenantServiceTestSuite) TestCreateTenant_LocalAccount() {
	ctx := context.Background()
	password := "initial-pass"
	req := dto.CreateTenantRequest{
		FullName: "Siti Rahma",
		Email:    "Siti@Example.com",
		Password: &password,
	}

	suite.mockRepo.On("FindTenantByEmail", ctx, "siti@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Email == "siti@example.com" &&
			t.Role == domain.RoleTenant &&
			t.AuthProvider == domain.ProviderLocal &&
			t.PasswordHash != nil &&
			utils.CheckPasswordHash(password, *t.PasswordHash)
	})).Return(nil).Once()

	created, err := suite.service.CreateTenant(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ID)
	suite.Equal("siti@example.com", created.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_GoogleAccountWithoutPassword() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
	}

	suite.mockRepo.On("FindTenantByEmail", ctx, "budi@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.AuthProvider == domain.ProviderGoogle && t.PasswordHash == nil
	})).Return(nil).Once()

	created, err := suite.service.CreateTenant(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Nil(created.PasswordHash)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{FullName: "Siti Rahma", Email: "siti@example.com"}

	suite.mockRepo.On("FindTenantByEmail", ctx, "siti@example.com").Return(&domain.Tenant{ID: "existing"}, nil).Once()

	created, err := suite.service.CreateTenant(ctx, suite.admin, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_NonAdminForbidden() {
	ctx := context.Background()

	created, err := suite.service.CreateTenant(ctx, suite.tenant, dto.CreateTenantRequest{Email: "x@example.com"})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTenantByEmail", mock.Anything, mock.Anything)
}

// --- UpdateTenant ---

func (suite *TenantServiceTestSuite) TestUpdateTenant_SelfEdit() {
	ctx := context.Background()
	newName := "Siti R. Updated"
	existing := &domain.Tenant{ID: suite.tenant.ID, FullName: "Siti Rahma", Email: "siti@example.com"}

	suite.mockRepo.On("FindTenantByID", ctx, suite.tenant.ID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.ID == suite.tenant.ID && t.FullName == newName
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTenant(ctx, suite.tenant, suite.tenant.ID, dto.UpdateTenantRequest{FullName: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
}

func (suite *TenantServiceTestSuite) TestUpdateTenant_TenantCannotEditOthers() {
	ctx := context.Background()
	otherID := uuid.NewString()

	updated, err := suite.service.UpdateTenant(ctx, suite.tenant, otherID, dto.UpdateTenantRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTenantByID", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestUpdateTenant_BadCategory() {
	ctx := context.Background()
	bad := "SPACE_TOURISM"
	existing := &domain.Tenant{ID: suite.tenant.ID}

	suite.mockRepo.On("FindTenantByID", ctx, suite.tenant.ID).Return(existing, nil).Once()

	_, err := suite.service.UpdateTenant(ctx, suite.admin, suite.tenant.ID, dto.UpdateTenantRequest{BusinessCategory: &bad})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTenant", mock.Anything, mock.Anything)
}

// --- DeleteTenant ---

func (suite *TenantServiceTestSuite) TestDeleteTenant_Success() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindTenantByID", ctx, id).Return(&domain.Tenant{ID: id}, nil).Once()
	suite.mockRepo.On("MarkTenantDeleted", ctx, id, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteTenant(ctx, suite.admin, id)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestDeleteTenant_Missing() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindTenantByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTenant(ctx, suite.admin, id)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkTenantDeleted", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
