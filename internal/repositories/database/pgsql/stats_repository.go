package pgsql

import (
	"context"
	"time"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// statsRepository implements the StatsRepository interface
type statsRepository struct {
	BaseRepository
}

// newStatsRepository creates a new stats repository
func newStatsRepository(db *pgxpool.Pool) portsrepo.StatsRepository {
	return &statsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.StatsRepository = (*statsRepository)(nil)

// GetLeaseStats computes lease and payment aggregates for the given scope in
// two queries against current store state. Overdue counts every lease past
// due at the reference instant, regardless of status.
func (r *statsRepository) GetLeaseStats(ctx context.Context, filter domain.StatsFilter, now time.Time) (*domain.LedgerStats, error) {
	stats := &domain.LedgerStats{
		TotalPeriodicIncome:  decimal.Zero,
		AvgLeaseAmount:       decimal.Zero,
		TotalAmountCollected: decimal.Zero,
		AvgPaymentAmount:     decimal.Zero,
	}

	leaseQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE next_due_date < $1),
			COALESCE(SUM(amount) FILTER (WHERE status = 'active' AND frequency = $2), 0),
			COALESCE(AVG(amount), 0)
		FROM leases
		WHERE ($3 = '' OR owner_id = $3)
		  AND ($4 = '' OR tenant_id = $4);
	`
	err := r.Pool.QueryRow(ctx, leaseQuery, now, string(filter.Period), filter.HostID, filter.TenantID).Scan(
		&stats.TotalLeases,
		&stats.ActiveLeases,
		&stats.OverdueLeases,
		&stats.TotalPeriodicIncome,
		&stats.AvgLeaseAmount,
	)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to aggregate lease statistics", err)
	}

	paymentQuery := `
		SELECT
			COUNT(*),
			COALESCE(SUM(t.amount), 0),
			COALESCE(AVG(t.amount), 0)
		FROM ledger_transactions t
		JOIN leases l ON t.lease_id = l.lease_id
		WHERE t.kind = 'rent_payment'
		  AND ($1 = '' OR l.owner_id = $1)
		  AND ($2 = '' OR l.tenant_id = $2);
	`
	err = r.Pool.QueryRow(ctx, paymentQuery, filter.HostID, filter.TenantID).Scan(
		&stats.TotalPaymentsCount,
		&stats.TotalAmountCollected,
		&stats.AvgPaymentAmount,
	)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to aggregate payment statistics", err)
	}

	return stats, nil
}
