package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/core/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaseRepository ---
type MockLeaseRepository struct {
	mock.Mock
}

// Ensure MockLeaseRepository implements portsrepo.LeaseRepositoryWithTx
var _ portsrepo.LeaseRepositoryWithTx = (*MockLeaseRepository)(nil)

func (m *MockLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}

func (m *MockLeaseRepository) ListLeases(ctx context.Context, ownerID, tenantID string) ([]domain.Lease, error) {
	args := m.Called(ctx, ownerID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindLeasesDueWithin(ctx context.Context, windowStart, windowEnd time.Time, includeOverdue bool) ([]domain.Lease, error) {
	args := m.Called(ctx, windowStart, windowEnd, includeOverdue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}

func (m *MockLeaseRepository) SaveLeaseWithObligation(ctx context.Context, lease domain.Lease, obligation domain.LedgerTransaction) error {
	args := m.Called(ctx, lease, obligation)
	return args.Error(0)
}

func (m *MockLeaseRepository) RecordPaymentAndAdvance(ctx context.Context, payment domain.LedgerTransaction, leaseID string, nextDue time.Time, paidDate time.Time, paidAmount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, payment, leaseID, nextDue, paidDate, paidAmount, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockLeaseRepository) StampReminder(ctx context.Context, leaseID string, remindedAt time.Time) error {
	args := m.Called(ctx, leaseID, remindedAt)
	return args.Error(0)
}

func (m *MockLeaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockLeaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLeaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

var _ portsrepo.TransactionReader = (*MockTransactionReader)(nil)

func (m *MockTransactionReader) FindTransactionsByLeaseID(ctx context.Context, leaseID string) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

// --- Mock DirectoryGateway ---
type MockDirectoryGateway struct {
	mock.Mock
}

var _ gateways.DirectoryGateway = (*MockDirectoryGateway)(nil)

func (m *MockDirectoryGateway) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockDirectoryGateway) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type LeaseServiceTestSuite struct {
	suite.Suite
	mockLeaseRepo *MockLeaseRepository
	mockTxnRepo   *MockTransactionReader
	mockDirectory *MockDirectoryGateway
	service       portssvc.LeaseSvcFacade
	property      domain.Property
	tenant        domain.User
	creatorUserID string
}

func (suite *LeaseServiceTestSuite) SetupTest() {
	suite.mockLeaseRepo = new(MockLeaseRepository)
	suite.mockTxnRepo = new(MockTransactionReader)
	suite.mockDirectory = new(MockDirectoryGateway)
	suite.service = services.NewLeaseService(suite.mockLeaseRepo, suite.mockTxnRepo, suite.mockDirectory)

	suite.creatorUserID = uuid.NewString()
	suite.property = domain.Property{
		PropertyID: uuid.NewString(),
		OwnerID:    uuid.NewString(),
		Title:      "Sunny two-bedroom",
		Status:     domain.PropertyAvailable,
	}
	suite.tenant = domain.User{
		UserID: uuid.NewString(),
		Name:   "Test Tenant",
		Email:  "tenant@example.com",
		Phone:  "+15550001111",
	}
}

func (suite *LeaseServiceTestSuite) validCreateRequest() dto.CreateLeaseRequest {
	return dto.CreateLeaseRequest{
		PropertyID:   suite.property.PropertyID,
		TenantID:     suite.tenant.UserID,
		Amount:       decimal.NewFromInt(1200),
		CurrencyCode: "EUR",
		Frequency:    "monthly",
		FirstDueDate: "2025-02-01",
	}
}

func (suite *LeaseServiceTestSuite) TestCreateLease_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockDirectory.On("GetProperty", ctx, suite.property.PropertyID).Return(&suite.property, nil).Once()
	suite.mockDirectory.On("GetUser", ctx, suite.tenant.UserID).Return(&suite.tenant, nil).Once()

	var savedLease domain.Lease
	var savedObligation domain.LedgerTransaction
	suite.mockLeaseRepo.On("SaveLeaseWithObligation", ctx, mock.AnythingOfType("domain.Lease"), mock.AnythingOfType("domain.LedgerTransaction")).
		Run(func(args mock.Arguments) {
			savedLease = args.Get(1).(domain.Lease)
			savedObligation = args.Get(2).(domain.LedgerTransaction)
		}).
		Return(nil).Once()

	lease, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(lease)
	suite.NotEmpty(lease.LeaseID)
	suite.Equal(suite.property.OwnerID, lease.OwnerID)
	suite.Equal(domain.LeaseActive, lease.Status)
	suite.Equal(domain.FrequencyMonthly, lease.Frequency)
	suite.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), lease.NextDueDate)
	suite.Equal(suite.creatorUserID, lease.CreatedBy)

	// The first obligation mirrors the lease terms and starts pending.
	suite.Equal(savedLease.LeaseID, savedObligation.LeaseID)
	suite.Equal(domain.KindRentDue, savedObligation.Kind)
	suite.Equal(domain.TxnPending, savedObligation.Status)
	suite.True(savedObligation.Amount.Equal(req.Amount))
	suite.Equal(suite.tenant.UserID, savedObligation.PayerID)
	suite.Equal(suite.property.OwnerID, savedObligation.PayeeID)
	suite.Equal(lease.NextDueDate, savedObligation.EntryDate)

	suite.mockLeaseRepo.AssertExpectations(suite.T())
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *LeaseServiceTestSuite) TestCreateLease_DefaultsFrequencyAndCurrency() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Frequency = ""
	req.CurrencyCode = ""

	suite.mockDirectory.On("GetProperty", ctx, suite.property.PropertyID).Return(&suite.property, nil).Once()
	suite.mockDirectory.On("GetUser", ctx, suite.tenant.UserID).Return(&suite.tenant, nil).Once()
	suite.mockLeaseRepo.On("SaveLeaseWithObligation", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	lease, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.FrequencyMonthly, lease.Frequency)
	suite.Equal("USD", lease.CurrencyCode)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaseRepo.AssertNotCalled(suite.T(), "SaveLeaseWithObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_BadFrequency() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Frequency = "fortnightly"

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrBadFrequency)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_BadDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.FirstDueDate = "01/02/2025"

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrBadDate)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_EndBeforeStart() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	start := "2025-02-01"
	end := "2025-01-01"
	req.LeaseStart = &start
	req.LeaseEnd = &end

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrLeaseEndBeforeStart)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_PropertyNotFound() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockDirectory.On("GetProperty", ctx, suite.property.PropertyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLeaseRepo.AssertNotCalled(suite.T(), "SaveLeaseWithObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_TenantNotFound() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockDirectory.On("GetProperty", ctx, suite.property.PropertyID).Return(&suite.property, nil).Once()
	suite.mockDirectory.On("GetUser", ctx, suite.tenant.UserID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLeaseRepo.AssertNotCalled(suite.T(), "SaveLeaseWithObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_SaveFails() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockDirectory.On("GetProperty", ctx, suite.property.PropertyID).Return(&suite.property, nil).Once()
	suite.mockDirectory.On("GetUser", ctx, suite.tenant.UserID).Return(&suite.tenant, nil).Once()
	suite.mockLeaseRepo.On("SaveLeaseWithObligation", ctx, mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(503, "store down", errors.New("pg: connection refused"))).Once()

	_, err := suite.service.CreateLease(ctx, req, suite.creatorUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

func (suite *LeaseServiceTestSuite) TestGetLeaseByID_Success() {
	ctx := context.Background()
	leaseID := uuid.NewString()
	expected := &domain.Lease{LeaseID: leaseID, Status: domain.LeaseActive}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, leaseID).Return(expected, nil).Once()

	lease, err := suite.service.GetLeaseByID(ctx, leaseID)

	suite.Require().NoError(err)
	suite.Equal(expected, lease)
}

func (suite *LeaseServiceTestSuite) TestGetLeaseByID_NotFound() {
	ctx := context.Background()
	leaseID := uuid.NewString()

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, leaseID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLeaseByID(ctx, leaseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LeaseServiceTestSuite) TestListLeases_PassesFilters() {
	ctx := context.Background()
	hostID := uuid.NewString()
	expected := []domain.Lease{{LeaseID: uuid.NewString()}}

	suite.mockLeaseRepo.On("ListLeases", ctx, hostID, "").Return(expected, nil).Once()

	leases, err := suite.service.ListLeases(ctx, hostID, "")

	suite.Require().NoError(err)
	suite.Equal(expected, leases)
}

func (suite *LeaseServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	leaseID := uuid.NewString()
	lease := &domain.Lease{LeaseID: leaseID}
	expected := []domain.LedgerTransaction{
		{TransactionID: uuid.NewString(), LeaseID: leaseID, Kind: domain.KindRentDue},
		{TransactionID: uuid.NewString(), LeaseID: leaseID, Kind: domain.KindRentPayment},
	}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, leaseID).Return(lease, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByLeaseID", ctx, leaseID).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, leaseID)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
}

func (suite *LeaseServiceTestSuite) TestListTransactions_LeaseNotFound() {
	ctx := context.Background()
	leaseID := uuid.NewString()

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, leaseID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTransactions(ctx, leaseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByLeaseID", mock.Anything, mock.Anything)
}

func TestLeaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseServiceTestSuite))
}
