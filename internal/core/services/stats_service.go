package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
)

// statsService computes ledger roll-ups.
type statsService struct {
	BaseService
	statsRepo portsrepo.StatsRepository
	directory gateways.DirectoryGateway
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo portsrepo.StatsRepository, directory gateways.DirectoryGateway) portssvc.StatsSvcFacade {
	return &statsService{
		statsRepo: statsRepo,
		directory: directory,
	}
}

// Ensure statsService implements the portssvc.StatsSvcFacade interface
var _ portssvc.StatsSvcFacade = (*statsService)(nil)

// GetStatistics computes counts, sums and averages over leases and payments
// for the given scope. Host and tenant filters compose; both empty means
// platform-wide. Figures are read-committed at call time: each underlying
// query sees current store state and nothing is cached between calls.
func (s *statsService) GetStatistics(ctx context.Context, filter domain.StatsFilter) (*domain.LedgerStats, error) {
	logger := s.GetLogger(ctx)

	if filter.Period == "" {
		filter.Period = domain.FrequencyMonthly
	}
	if !filter.Period.IsValid() {
		return nil, fmt.Errorf("%w: unsupported period %q", apperrors.ErrValidation, filter.Period)
	}

	// Scope IDs must resolve in the directory so an unknown host or tenant
	// fails loudly instead of returning all-zero platform noise.
	if filter.HostID != "" {
		if _, err := s.directory.GetUser(ctx, filter.HostID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to resolve host for statistics", slog.String("error", err.Error()), slog.String("host_id", filter.HostID))
			}
			return nil, fmt.Errorf("failed to resolve host %s: %w", filter.HostID, err)
		}
	}
	if filter.TenantID != "" {
		if _, err := s.directory.GetUser(ctx, filter.TenantID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to resolve tenant for statistics", slog.String("error", err.Error()), slog.String("tenant_id", filter.TenantID))
			}
			return nil, fmt.Errorf("failed to resolve tenant %s: %w", filter.TenantID, err)
		}
	}

	stats, err := s.statsRepo.GetLeaseStats(ctx, filter, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute ledger statistics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute ledger statistics: %w", err)
	}

	logger.Debug("Ledger statistics computed",
		slog.String("host_id", filter.HostID),
		slog.String("tenant_id", filter.TenantID),
		slog.Int("total_leases", stats.TotalLeases))
	return stats, nil
}
