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
	"github.com/homevia/rent_ledger_app/internal/utils/schedule"
)

// reminderChannel is one dispatch capability. Channels are evaluated in
// order against the tenant's preferences and contact fields; adding a
// channel means appending one entry to the list.
type reminderChannel struct {
	name    string
	enabled func(user *domain.User) bool
	contact func(user *domain.User) string
	send    func(ctx context.Context, g gateways.NotificationGateway, to, message string) error
}

var reminderChannels = []reminderChannel{
	{
		name:    "sms",
		enabled: func(u *domain.User) bool { return u.Preferences.SMS },
		contact: func(u *domain.User) string { return u.Phone },
		send: func(ctx context.Context, g gateways.NotificationGateway, to, message string) error {
			return g.SendSMS(ctx, to, message)
		},
	},
	{
		name:    "whatsapp",
		enabled: func(u *domain.User) bool { return u.Preferences.WhatsApp },
		contact: func(u *domain.User) string { return u.Phone },
		send: func(ctx context.Context, g gateways.NotificationGateway, to, message string) error {
			return g.SendWhatsApp(ctx, to, message)
		},
	},
	{
		name:    "email",
		enabled: func(u *domain.User) bool { return u.Preferences.Email },
		contact: func(u *domain.User) string { return u.Email },
		send: func(ctx context.Context, g gateways.NotificationGateway, to, message string) error {
			return g.SendEmail(ctx, to, "Rent payment reminder", message)
		},
	},
}

// reminderService runs the periodic rent-reminder sweep.
type reminderService struct {
	BaseService
	leaseRepo       portsrepo.LeaseRepositoryWithTx
	directory       gateways.DirectoryGateway
	notifier        gateways.NotificationGateway
	dispatchTimeout time.Duration
}

// ReminderServiceOption is a functional option for configuring the reminder service
type ReminderServiceOption func(*reminderService)

// WithDispatchTimeout bounds each per-lease gateway dispatch.
func WithDispatchTimeout(d time.Duration) ReminderServiceOption {
	return func(s *reminderService) {
		s.dispatchTimeout = d
	}
}

// NewReminderService creates a new ReminderService with the provided options
func NewReminderService(leaseRepo portsrepo.LeaseRepositoryWithTx, directory gateways.DirectoryGateway, notifier gateways.NotificationGateway, options ...ReminderServiceOption) portssvc.ReminderSvcFacade {
	svc := &reminderService{
		leaseRepo:       leaseRepo,
		directory:       directory,
		notifier:        notifier,
		dispatchTimeout: 15 * time.Second,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reminderService implements the portssvc.ReminderSvcFacade interface
var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

// RunReminderSweep scans active leases whose next due date falls within the
// window and dispatches one reminder per lease. Failures are strictly
// per-lease: a bad contact or a downed provider for one tenant is recorded
// in that lease's result and the sweep moves on. A lease is stamped
// (last_reminder_at, reminder_count) only after a confirmed dispatch, so
// there is never partial state to undo.
func (s *reminderService) RunReminderSweep(ctx context.Context, daysBefore int, includeOverdue bool) ([]domain.ReminderResult, error) {
	logger := s.GetLogger(ctx)

	if daysBefore < 0 {
		return nil, fmt.Errorf("%w: daysBefore must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, daysBefore).Add(24*time.Hour - time.Nanosecond)

	candidates, err := s.leaseRepo.FindLeasesDueWithin(ctx, windowStart, windowEnd, includeOverdue)
	if err != nil {
		logger.Error("Failed to load reminder candidates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load reminder candidates: %w", err)
	}

	results := make([]domain.ReminderResult, 0, len(candidates))
	sent := 0
	for i := range candidates {
		result := s.remindLease(ctx, &candidates[i], now)
		if result.Sent {
			sent++
		}
		results = append(results, result)
	}

	logger.Info("Reminder sweep completed",
		slog.Int("candidates", len(candidates)),
		slog.Int("sent", sent),
		slog.Int("days_before", daysBefore),
		slog.Bool("include_overdue", includeOverdue))
	return results, nil
}

// remindLease processes a single candidate. It never returns an error;
// failures are folded into the result.
func (s *reminderService) remindLease(ctx context.Context, lease *domain.Lease, now time.Time) domain.ReminderResult {
	logger := s.GetLogger(ctx)

	diffDays := schedule.DaysUntil(now, lease.NextDueDate)
	reminderType := domain.ReminderDueSoon
	if diffDays < 0 {
		reminderType = domain.ReminderOverdue
	}

	result := domain.ReminderResult{
		LeaseID:      lease.LeaseID,
		TenantID:     lease.TenantID,
		ReminderType: reminderType,
	}

	tenant, err := s.directory.GetUser(ctx, lease.TenantID)
	if err != nil {
		logger.Warn("Failed to resolve tenant during sweep",
			slog.String("lease_id", lease.LeaseID),
			slog.String("tenant_id", lease.TenantID),
			slog.String("error", err.Error()))
		result.Error = fmt.Sprintf("resolve tenant: %v", err)
		return result
	}

	message := composeReminderMessage(lease, reminderType, diffDays)

	var lastSendErr error
	attempted := false
	for _, ch := range reminderChannels {
		if !ch.enabled(tenant) {
			continue
		}
		to := ch.contact(tenant)
		if to == "" {
			continue
		}
		attempted = true

		dispatchCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
		err := ch.send(dispatchCtx, s.notifier, to, message)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %s dispatch timed out", apperrors.ErrGatewayUnavailable, ch.name)
			}
			logger.Warn("Reminder dispatch failed",
				slog.String("lease_id", lease.LeaseID),
				slog.String("channel", ch.name),
				slog.String("error", err.Error()))
			lastSendErr = err
			continue
		}

		result.Sent = true
		result.Channel = ch.name
		break
	}

	if !result.Sent {
		if attempted {
			result.Error = lastSendErr.Error()
		}
		// No enabled, contactable channel at all is not an error: the
		// tenant simply cannot be reached.
		return result
	}

	// Stamp only after the dispatch is confirmed.
	if err := s.leaseRepo.StampReminder(ctx, lease.LeaseID, now); err != nil {
		logger.Error("Failed to stamp reminder on lease",
			slog.String("lease_id", lease.LeaseID),
			slog.String("error", err.Error()))
		result.Error = fmt.Sprintf("stamp reminder: %v", err)
	}

	return result
}

// composeReminderMessage distinguishes overdue from upcoming: overdue tells
// the tenant how many days late they are, due_soon names the due date.
func composeReminderMessage(lease *domain.Lease, reminderType domain.ReminderType, diffDays int) string {
	rent := lease.Amount.String() + " " + lease.CurrencyCode
	if reminderType == domain.ReminderOverdue {
		daysLate := -diffDays
		plural := "days"
		if daysLate == 1 {
			plural = "day"
		}
		return fmt.Sprintf("Your rent payment of %s is %d %s overdue. Please pay as soon as possible to avoid further action.", rent, daysLate, plural)
	}
	return fmt.Sprintf("Your rent payment of %s is due on %s. Please make sure funds are available.", rent, lease.NextDueDate.Format(dateLayout))
}
