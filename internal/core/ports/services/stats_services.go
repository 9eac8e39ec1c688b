package services

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// StatsSvcFacade defines statistics operations.
type StatsSvcFacade interface {
	// GetStatistics computes roll-ups over leases and ledger entries for the
	// given scope, read-committed at call time.
	GetStatistics(ctx context.Context, filter domain.StatsFilter) (*domain.LedgerStats, error)
}
