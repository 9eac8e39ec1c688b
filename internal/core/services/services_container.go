package services

import (
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	portsrepo "github.com/homevia/rent_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, directory gateways.DirectoryGateway, notifier gateways.NotificationGateway) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Lease = NewLeaseService(repos.LeaseRepo, repos.TransactionRepo, directory)
	container.Payment = NewPaymentService(repos.LeaseRepo)
	container.Reminder = NewReminderService(
		repos.LeaseRepo,
		directory,
		notifier,
		WithDispatchTimeout(cfg.ReminderDispatchTimeout),
	)
	container.Stats = NewStatsService(repos.StatsRepo, directory)

	return container
}
