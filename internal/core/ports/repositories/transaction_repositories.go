package repositories

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries. There is no
// writer interface on its own: entries are only ever written inside the
// lease repository's atomic operations.
type TransactionReader interface {
	// FindTransactionsByLeaseID retrieves all ledger entries for a lease,
	// oldest first.
	FindTransactionsByLeaseID(ctx context.Context, leaseID string) ([]domain.LedgerTransaction, error)
}
