package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/utils/schedule"
	"github.com/shopspring/decimal"
)

var (
	ErrLeaseNotActive = errors.New("lease is not active")
)

// paymentService records rent payments against leases.
type paymentService struct {
	BaseService
	leaseRepo portsrepo.LeaseRepositoryWithTx
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(leaseRepo portsrepo.LeaseRepositoryWithTx) portssvc.PaymentSvcFacade {
	return &paymentService{
		leaseRepo: leaseRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment persists a completed rent_payment ledger entry and advances
// the lease by one period of its frequency, atomically. The amount is
// recorded as given: it is not checked against the amount owed, so partial
// and over-payments land as facts. The new due cycle starts with zeroed
// reminder counters.
func (s *paymentService) RecordPayment(ctx context.Context, leaseID string, req dto.RecordPaymentRequest, recorderUserID string) (*domain.Lease, error) {
	logger := s.GetLogger(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	lease, err := s.leaseRepo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find lease for payment", slog.String("error", err.Error()), slog.String("lease_id", leaseID))
		}
		return nil, fmt.Errorf("failed to find lease by ID %s: %w", leaseID, err)
	}

	// Cancelled is terminal and paused leases take no payments either.
	if lease.Status != domain.LeaseActive {
		return nil, fmt.Errorf("%w: %w: lease %s is %s", apperrors.ErrConflict, ErrLeaseNotActive, leaseID, lease.Status)
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paymentDate, err = parseDate(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
	}

	nextDue, err := schedule.NextDueDate(lease.NextDueDate, lease.Frequency)
	if err != nil {
		// A lease row with an unknown frequency is a data integrity problem.
		logger.Error("Failed to compute next due date", slog.String("error", err.Error()), slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	now := time.Now().UTC()
	payment := domain.LedgerTransaction{
		TransactionID: uuid.NewString(),
		LeaseID:       lease.LeaseID,
		PayerID:       lease.TenantID,
		PayeeID:       lease.OwnerID,
		Amount:        req.Amount,
		CurrencyCode:  lease.CurrencyCode,
		Kind:          domain.KindRentPayment,
		Status:        domain.TxnCompleted,
		EntryDate:     paymentDate,
		PaymentMethod: req.Method,
		ExternalRef:   req.ExternalRef,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     recorderUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: recorderUserID,
		},
	}

	err = s.leaseRepo.RecordPaymentAndAdvance(ctx, payment, lease.LeaseID, nextDue, paymentDate, req.Amount, recorderUserID, now)
	if err != nil {
		logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	// Reflect the committed state on the returned lease.
	paidAmount := req.Amount
	lease.NextDueDate = nextDue
	lease.LastPaidDate = &paymentDate
	lease.LastPaidAmount = &paidAmount
	lease.ReminderCount = 0
	lease.LastReminderAt = nil
	lease.LastUpdatedAt = now
	lease.LastUpdatedBy = recorderUserID

	logger.Info("Payment recorded successfully",
		slog.String("lease_id", lease.LeaseID),
		slog.String("transaction_id", payment.TransactionID),
		slog.String("amount", req.Amount.String()),
		slog.String("next_due", nextDue.Format(dateLayout)))
	return lease, nil
}
