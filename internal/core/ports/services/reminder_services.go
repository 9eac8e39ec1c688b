package services

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// ReminderSvcFacade defines the reminder sweep operation.
type ReminderSvcFacade interface {
	// RunReminderSweep scans active leases due within daysBefore days (plus
	// overdue ones when includeOverdue is set), dispatches reminders per
	// tenant preference, and returns one result per candidate lease. A
	// dispatch failure for one lease never aborts the sweep.
	RunReminderSweep(ctx context.Context, daysBefore int, includeOverdue bool) ([]domain.ReminderResult, error)
}
