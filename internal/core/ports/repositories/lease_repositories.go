package repositories

import (
	"context"
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LeaseReader defines read operations for lease data
type LeaseReader interface {
	// FindLeaseByID retrieves a specific lease by its unique identifier.
	FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)

	// ListLeases retrieves leases optionally filtered by property owner and/or tenant.
	ListLeases(ctx context.Context, ownerID, tenantID string) ([]domain.Lease, error)

	// FindLeasesDueWithin retrieves active leases whose next due date falls on or
	// before the window end. When includeOverdue is false, leases already past
	// due (next due before windowStart's date) are excluded.
	FindLeasesDueWithin(ctx context.Context, windowStart, windowEnd time.Time, includeOverdue bool) ([]domain.Lease, error)
}

// LeaseWriter defines write operations for lease data
type LeaseWriter interface {
	// SaveLeaseWithObligation persists the lease, its first rent_due ledger
	// entry, and the property status flip as a single atomic write.
	SaveLeaseWithObligation(ctx context.Context, lease domain.Lease, obligation domain.LedgerTransaction) error

	// RecordPaymentAndAdvance persists a rent_payment ledger entry and updates
	// the lease's next due date, last-paid fields and reminder counters as a
	// single atomic write.
	RecordPaymentAndAdvance(ctx context.Context, payment domain.LedgerTransaction, leaseID string, nextDue time.Time, paidDate time.Time, paidAmount decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// StampReminder records a confirmed reminder dispatch on an active lease:
	// sets last_reminder_at and increments reminder_count in one statement.
	StampReminder(ctx context.Context, leaseID string, remindedAt time.Time) error
}

// LeaseRepositoryFacade combines all lease-related repository interfaces
type LeaseRepositoryFacade interface {
	LeaseReader
	LeaseWriter
}

// LeaseRepositoryWithTx extends LeaseRepositoryFacade with transaction capabilities
type LeaseRepositoryWithTx interface {
	LeaseRepositoryFacade
	TransactionManager
}
