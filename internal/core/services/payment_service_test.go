package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/core/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockLeaseRepo  *MockLeaseRepository
	service        portssvc.PaymentSvcFacade
	lease          domain.Lease
	recorderUserID string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockLeaseRepo = new(MockLeaseRepository)
	suite.service = services.NewPaymentService(suite.mockLeaseRepo)

	suite.recorderUserID = uuid.NewString()
	suite.lease = domain.Lease{
		LeaseID:       uuid.NewString(),
		PropertyID:    uuid.NewString(),
		TenantID:      uuid.NewString(),
		OwnerID:       uuid.NewString(),
		Amount:        decimal.NewFromInt(1500),
		CurrencyCode:  "USD",
		Frequency:     domain.FrequencyMonthly,
		NextDueDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:        domain.LeaseActive,
		ReminderCount: 2,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	leaseCopy := suite.lease
	req := dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(1500),
		Method: "bank_transfer",
	}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	var savedPayment domain.LedgerTransaction
	// Jan 31 monthly advances to the clamped Feb 28.
	expectedNextDue := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	suite.mockLeaseRepo.On("RecordPaymentAndAdvance", ctx, mock.AnythingOfType("domain.LedgerTransaction"), suite.lease.LeaseID, expectedNextDue, mock.AnythingOfType("time.Time"), req.Amount, suite.recorderUserID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			savedPayment = args.Get(1).(domain.LedgerTransaction)
		}).
		Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(expectedNextDue, updated.NextDueDate)
	suite.Require().NotNil(updated.LastPaidAmount)
	suite.True(updated.LastPaidAmount.Equal(req.Amount))
	suite.NotNil(updated.LastPaidDate)
	suite.Equal(0, updated.ReminderCount)
	suite.Nil(updated.LastReminderAt)

	suite.Equal(domain.KindRentPayment, savedPayment.Kind)
	suite.Equal(domain.TxnCompleted, savedPayment.Status)
	suite.Equal(suite.lease.TenantID, savedPayment.PayerID)
	suite.Equal(suite.lease.OwnerID, savedPayment.PayeeID)
	suite.Equal("bank_transfer", savedPayment.PaymentMethod)

	suite.mockLeaseRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExplicitDateAndPartialAmount() {
	ctx := context.Background()
	leaseCopy := suite.lease
	paymentDate := "2025-01-30"
	// Less than the rent owed; recorded as-is.
	req := dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(700),
		PaymentDate: &paymentDate,
	}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	expectedPaidDate := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	suite.mockLeaseRepo.On("RecordPaymentAndAdvance", ctx, mock.Anything, suite.lease.LeaseID, mock.Anything, expectedPaidDate, req.Amount, suite.recorderUserID, mock.Anything).
		Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.LastPaidDate)
	suite.Equal(expectedPaidDate, *updated.LastPaidDate)
	suite.True(updated.LastPaidAmount.Equal(decimal.NewFromInt(700)))
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(-50)}

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaseRepo.AssertNotCalled(suite.T(), "FindLeaseByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_LeaseNotFound() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1500)}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CancelledLease() {
	ctx := context.Background()
	leaseCopy := suite.lease
	leaseCopy.Status = domain.LeaseCancelled
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1500)}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrLeaseNotActive)
	suite.mockLeaseRepo.AssertNotCalled(suite.T(), "RecordPaymentAndAdvance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PausedLease() {
	ctx := context.Background()
	leaseCopy := suite.lease
	leaseCopy.Status = domain.LeasePaused
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1500)}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BadPaymentDate() {
	ctx := context.Background()
	leaseCopy := suite.lease
	badDate := "30-01-2025"
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1500), PaymentDate: &badDate}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_StoreFailure() {
	ctx := context.Background()
	leaseCopy := suite.lease
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1500)}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()
	suite.mockLeaseRepo.On("RecordPaymentAndAdvance", ctx, mock.Anything, suite.lease.LeaseID, mock.Anything, mock.Anything, req.Amount, suite.recorderUserID, mock.Anything).
		Return(apperrors.NewAppError(503, "store down", errors.New("pg: connection refused"))).Once()

	_, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_WeeklyAdvance() {
	ctx := context.Background()
	leaseCopy := suite.lease
	leaseCopy.Frequency = domain.FrequencyWeekly
	leaseCopy.NextDueDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(400)}

	suite.mockLeaseRepo.On("FindLeaseByID", ctx, suite.lease.LeaseID).Return(&leaseCopy, nil).Once()

	expectedNextDue := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	suite.mockLeaseRepo.On("RecordPaymentAndAdvance", ctx, mock.Anything, suite.lease.LeaseID, expectedNextDue, mock.Anything, req.Amount, suite.recorderUserID, mock.Anything).
		Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, suite.lease.LeaseID, req, suite.recorderUserID)

	suite.Require().NoError(err)
	suite.Equal(expectedNextDue, updated.NextDueDate)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
