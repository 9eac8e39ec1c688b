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
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive   = errors.New("lease amount must be positive")
	ErrBadDate             = errors.New("date must be in YYYY-MM-DD format")
	ErrBadFrequency        = errors.New("unsupported payment frequency")
	ErrLeaseEndBeforeStart = errors.New("lease end must be after lease start")
)

// dateLayout is the wire format for all date-only fields.
const dateLayout = "2006-01-02"

const defaultCurrency = "USD"

// leaseService provides lease lifecycle operations.
type leaseService struct {
	BaseService
	leaseRepo portsrepo.LeaseRepositoryWithTx
	txnRepo   portsrepo.TransactionReader
	directory gateways.DirectoryGateway
}

// NewLeaseService creates a new LeaseService.
func NewLeaseService(leaseRepo portsrepo.LeaseRepositoryWithTx, txnRepo portsrepo.TransactionReader, directory gateways.DirectoryGateway) portssvc.LeaseSvcFacade {
	return &leaseService{
		leaseRepo: leaseRepo,
		txnRepo:   txnRepo,
		directory: directory,
	}
}

// Ensure leaseService implements the portssvc.LeaseSvcFacade interface
var _ portssvc.LeaseSvcFacade = (*leaseService)(nil)

// parseDate parses a YYYY-MM-DD string into a UTC date.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrBadDate)
	}
	return t.UTC(), nil
}

// parseOptionalDate parses a YYYY-MM-DD string pointer, nil meaning absent.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateLease validates the request, resolves property and tenant through the
// directory gateway, and persists the lease, its first rent_due ledger entry
// and the property status flip as one atomic unit. Gateway lookups happen
// before the store transaction begins so the atomic window stays short.
func (s *leaseService) CreateLease(ctx context.Context, req dto.CreateLeaseRequest, creatorUserID string) (*domain.Lease, error) {
	logger := s.GetLogger(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	frequency := domain.PaymentFrequency(req.Frequency)
	if req.Frequency == "" {
		frequency = domain.FrequencyMonthly
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, ErrBadFrequency, req.Frequency)
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = defaultCurrency
	}

	firstDue, err := parseDate(req.FirstDueDate)
	if err != nil {
		return nil, err
	}
	leaseStart, err := parseOptionalDate(req.LeaseStart)
	if err != nil {
		return nil, err
	}
	leaseEnd, err := parseOptionalDate(req.LeaseEnd)
	if err != nil {
		return nil, err
	}
	if leaseStart != nil && leaseEnd != nil && !leaseEnd.After(*leaseStart) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrLeaseEndBeforeStart)
	}
	if req.SecurityDeposit != nil && req.SecurityDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: security deposit must not be negative", apperrors.ErrValidation)
	}

	// Resolve external references before opening the atomic window.
	property, err := s.directory.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve property for lease creation", slog.String("error", err.Error()), slog.String("property_id", req.PropertyID))
		}
		return nil, fmt.Errorf("failed to resolve property %s: %w", req.PropertyID, err)
	}
	tenant, err := s.directory.GetUser(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve tenant for lease creation", slog.String("error", err.Error()), slog.String("tenant_id", req.TenantID))
		}
		return nil, fmt.Errorf("failed to resolve tenant %s: %w", req.TenantID, err)
	}

	now := time.Now().UTC()
	leaseID := uuid.NewString()

	lease := domain.Lease{
		LeaseID:         leaseID,
		PropertyID:      property.PropertyID,
		TenantID:        tenant.UserID,
		OwnerID:         property.OwnerID,
		Amount:          req.Amount,
		CurrencyCode:    currency,
		Frequency:       frequency,
		NextDueDate:     firstDue,
		SecurityDeposit: req.SecurityDeposit,
		LeaseStart:      leaseStart,
		LeaseEnd:        leaseEnd,
		Status:          domain.LeaseActive,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	obligation := domain.LedgerTransaction{
		TransactionID: uuid.NewString(),
		LeaseID:       leaseID,
		PayerID:       tenant.UserID,
		PayeeID:       property.OwnerID,
		Amount:        req.Amount,
		CurrencyCode:  currency,
		Kind:          domain.KindRentDue,
		Status:        domain.TxnPending,
		EntryDate:     firstDue,
		Notes:         "First rent cycle",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.leaseRepo.SaveLeaseWithObligation(ctx, lease, obligation); err != nil {
		logger.Error("Failed to save lease", slog.String("error", err.Error()), slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("failed to save lease: %w", err)
	}

	logger.Info("Lease created successfully",
		slog.String("lease_id", leaseID),
		slog.String("property_id", property.PropertyID),
		slog.String("tenant_id", tenant.UserID))
	return &lease, nil
}

// GetLeaseByID retrieves a specific lease.
func (s *leaseService) GetLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	lease, err := s.leaseRepo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find lease by ID", slog.String("lease_id", leaseID))
		}
		return nil, fmt.Errorf("failed to find lease by ID %s: %w", leaseID, err)
	}
	return lease, nil
}

// ListLeases retrieves leases scoped by host and/or tenant; empty IDs mean
// platform-wide.
func (s *leaseService) ListLeases(ctx context.Context, hostID, tenantID string) ([]domain.Lease, error) {
	leases, err := s.leaseRepo.ListLeases(ctx, hostID, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leases", slog.String("host_id", hostID), slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	return leases, nil
}

// ListTransactions retrieves the ledger history of a lease, oldest first. The
// lease is fetched first so an unknown ID fails with NotFound rather than an
// empty list.
func (s *leaseService) ListTransactions(ctx context.Context, leaseID string) ([]domain.LedgerTransaction, error) {
	if _, err := s.leaseRepo.FindLeaseByID(ctx, leaseID); err != nil {
		return nil, fmt.Errorf("failed to find lease by ID %s: %w", leaseID, err)
	}

	txns, err := s.txnRepo.FindTransactionsByLeaseID(ctx, leaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("failed to list ledger entries for lease %s: %w", leaseID, err)
	}
	return txns, nil
}
