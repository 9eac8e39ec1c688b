package repositories

import (
	"context"
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// StatsRepository defines aggregate queries over leases and ledger entries.
type StatsRepository interface {
	// GetLeaseStats computes lease counts, periodic income and averages for
	// the given filter, with overdue judged against now.
	GetLeaseStats(ctx context.Context, filter domain.StatsFilter, now time.Time) (*domain.LedgerStats, error)
}
