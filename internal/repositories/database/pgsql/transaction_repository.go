package pgsql

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	"github.com/homevia/rent_ledger_app/internal/models"
	"github.com/homevia/rent_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a read-only repository over the ledger
// entries table. Writes happen exclusively through the lease repository's
// atomic operations.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionReader {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// FindTransactionsByLeaseID retrieves all ledger entries for a lease, oldest first.
func (r *PgxTransactionRepository) FindTransactionsByLeaseID(ctx context.Context, leaseID string) ([]domain.LedgerTransaction, error) {
	query := `
		SELECT transaction_id, lease_id, payer_id, payee_id, amount, currency_code,
		       kind, status, entry_date, payment_method, external_ref, notes,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_transactions
		WHERE lease_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, leaseID)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to query ledger entries for lease "+leaseID, err)
	}
	defer rows.Close()

	transactions := []models.LedgerTransaction{}
	for rows.Next() {
		var t models.LedgerTransaction
		err := rows.Scan(
			&t.TransactionID,
			&t.LeaseID,
			&t.PayerID,
			&t.PayeeID,
			&t.Amount,
			&t.CurrencyCode,
			&t.Kind,
			&t.Status,
			&t.EntryDate,
			&t.PaymentMethod,
			&t.ExternalRef,
			&t.Notes,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(503, "failed to scan ledger entry row for lease "+leaseID, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(503, "error iterating ledger entry rows for lease "+leaseID, err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}
