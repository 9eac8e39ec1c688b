package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	"github.com/homevia/rent_ledger_app/internal/models"
	"github.com/homevia/rent_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLeaseRepository struct {
	BaseRepository
}

// newPgxLeaseRepository creates a new repository for lease and ledger entry data.
func newPgxLeaseRepository(pool *pgxpool.Pool) portsrepo.LeaseRepositoryWithTx {
	return &PgxLeaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLeaseRepository implements portsrepo.LeaseRepositoryWithTx
var _ portsrepo.LeaseRepositoryWithTx = (*PgxLeaseRepository)(nil)

const leaseColumns = `
	lease_id, property_id, tenant_id, owner_id, amount, currency_code, frequency,
	next_due_date, last_paid_date, last_paid_amount, security_deposit,
	lease_start, lease_end, status, notes, reminder_count, last_reminder_at,
	created_at, created_by, last_updated_at, last_updated_by`

// scanLease scans one lease row in leaseColumns order.
func scanLease(row pgx.Row) (*models.Lease, error) {
	var m models.Lease
	err := row.Scan(
		&m.LeaseID,
		&m.PropertyID,
		&m.TenantID,
		&m.OwnerID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Frequency,
		&m.NextDueDate,
		&m.LastPaidDate,
		&m.LastPaidAmount,
		&m.SecurityDeposit,
		&m.LeaseStart,
		&m.LeaseEnd,
		&m.Status,
		&m.Notes,
		&m.ReminderCount,
		&m.LastReminderAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const insertTransactionQuery = `
	INSERT INTO ledger_transactions (
		transaction_id, lease_id, payer_id, payee_id, amount, currency_code,
		kind, status, entry_date, payment_method, external_ref, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`

func insertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := tx.Exec(ctx, insertTransactionQuery,
		m.TransactionID,
		m.LeaseID,
		m.PayerID,
		m.PayeeID,
		m.Amount,
		m.CurrencyCode,
		m.Kind,
		m.Status,
		m.EntryDate,
		m.PaymentMethod,
		m.ExternalRef,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return err
}

// SaveLeaseWithObligation persists the lease, its first rent_due ledger entry
// and the property status flip within one DB transaction. Either all three
// land or none do.
func (r *PgxLeaseRepository) SaveLeaseWithObligation(ctx context.Context, lease domain.Lease, obligation domain.LedgerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLease(lease)
	leaseQuery := `
		INSERT INTO leases (
			lease_id, property_id, tenant_id, owner_id, amount, currency_code, frequency,
			next_due_date, last_paid_date, last_paid_amount, security_deposit,
			lease_start, lease_end, status, notes, reminder_count, last_reminder_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, leaseQuery,
		m.LeaseID,
		m.PropertyID,
		m.TenantID,
		m.OwnerID,
		m.Amount,
		m.CurrencyCode,
		m.Frequency,
		m.NextDueDate,
		m.LastPaidDate,
		m.LastPaidAmount,
		m.SecurityDeposit,
		m.LeaseStart,
		m.LeaseEnd,
		m.Status,
		m.Notes,
		m.ReminderCount,
		m.LastReminderAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(503, "failed to insert lease "+m.LeaseID, err)
	}

	if err := insertTransactionTx(ctx, tx, obligation); err != nil {
		return apperrors.NewAppError(503, "failed to insert rent_due entry for lease "+m.LeaseID, err)
	}

	propertyQuery := `
		UPDATE properties
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE property_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, propertyQuery,
		m.PropertyID,
		string(domain.PropertyRented),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(503, "failed to mark property "+m.PropertyID+" rented", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Property vanished between the gateway lookup and the write; abort everything.
		return apperrors.NewNotFoundError("property " + m.PropertyID + " not found for status update")
	}

	return r.Commit(ctx, tx)
}

// RecordPaymentAndAdvance persists a rent_payment ledger entry and moves the
// lease forward to its next due cycle within one DB transaction. The lease
// update also resets the reminder counters so the new cycle is eligible for
// its own reminders.
func (r *PgxLeaseRepository) RecordPaymentAndAdvance(ctx context.Context, payment domain.LedgerTransaction, leaseID string, nextDue time.Time, paidDate time.Time, paidAmount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionTx(ctx, tx, payment); err != nil {
		return apperrors.NewAppError(503, "failed to insert rent_payment entry for lease "+leaseID, err)
	}

	leaseQuery := `
		UPDATE leases
		SET next_due_date = $2,
		    last_paid_date = $3,
		    last_paid_amount = $4,
		    reminder_count = 0,
		    last_reminder_at = NULL,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE lease_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, leaseQuery,
		leaseID,
		nextDue,
		paidDate,
		paidAmount,
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(503, "failed to advance lease "+leaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("lease " + leaseID + " not found for advancement")
	}

	return r.Commit(ctx, tx)
}

// FindLeaseByID retrieves a lease by its ID.
func (r *PgxLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE lease_id = $1;`

	m, err := scanLease(r.Pool.QueryRow(ctx, query, leaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(503, "failed to find lease by ID "+leaseID, err)
	}

	domainLease := mapping.ToDomainLease(*m)
	return &domainLease, nil
}

// ListLeases retrieves leases filtered by owner and/or tenant. Empty filter
// values mean no restriction on that dimension.
func (r *PgxLeaseRepository) ListLeases(ctx context.Context, ownerID, tenantID string) ([]domain.Lease, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM leases
		WHERE ($1 = '' OR owner_id = $1)
		  AND ($2 = '' OR tenant_id = $2)
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to query leases", err)
	}
	defer rows.Close()

	return collectLeases(rows)
}

// FindLeasesDueWithin retrieves active leases with next_due_date on or before
// windowEnd. When includeOverdue is false, leases due before windowStart are
// excluded so the scan covers a strictly upcoming window.
func (r *PgxLeaseRepository) FindLeasesDueWithin(ctx context.Context, windowStart, windowEnd time.Time, includeOverdue bool) ([]domain.Lease, error) {
	// Relies on the (status, next_due_date) index; the candidate set must
	// stay cheap to compute as the active-lease population grows.
	query := `
		SELECT ` + leaseColumns + `
		FROM leases
		WHERE status = $1
		  AND next_due_date <= $2
		  AND ($3 OR next_due_date >= $4)
		ORDER BY next_due_date;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.LeaseActive), windowEnd, includeOverdue, windowStart)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to query leases due for reminder", err)
	}
	defer rows.Close()

	return collectLeases(rows)
}

func collectLeases(rows pgx.Rows) ([]domain.Lease, error) {
	leases := []models.Lease{}
	for rows.Next() {
		m, err := scanLease(rows)
		if err != nil {
			return nil, apperrors.NewAppError(503, "failed to scan lease row", err)
		}
		leases = append(leases, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(503, "error iterating lease rows", err)
	}
	return mapping.ToDomainLeaseSlice(leases), nil
}

// StampReminder records a confirmed dispatch: bumps reminder_count and sets
// last_reminder_at in a single statement, guarded on status so a lease
// cancelled mid-sweep is never stamped. No read-modify-write, so concurrent
// sweeps cannot lose updates.
func (r *PgxLeaseRepository) StampReminder(ctx context.Context, leaseID string, remindedAt time.Time) error {
	query := `
		UPDATE leases
		SET reminder_count = reminder_count + 1,
		    last_reminder_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE lease_id = $1 AND status = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, leaseID, remindedAt, reminderActor, string(domain.LeaseActive))
	if err != nil {
		return apperrors.NewAppError(503, "failed to stamp reminder on lease "+leaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active lease " + leaseID + " not found for reminder stamp")
	}
	return nil
}

// reminderActor is the audit identity used for sweep-driven updates.
const reminderActor = "reminder-engine"
