package mapping

import (
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/models"
)

// ToModelLease converts a domain Lease to a model Lease
func ToModelLease(d domain.Lease) models.Lease {
	return models.Lease{
		LeaseID:         d.LeaseID,
		PropertyID:      d.PropertyID,
		TenantID:        d.TenantID,
		OwnerID:         d.OwnerID,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Frequency:       string(d.Frequency),
		NextDueDate:     d.NextDueDate,
		LastPaidDate:    d.LastPaidDate,
		LastPaidAmount:  d.LastPaidAmount,
		SecurityDeposit: d.SecurityDeposit,
		LeaseStart:      d.LeaseStart,
		LeaseEnd:        d.LeaseEnd,
		Status:          string(d.Status),
		Notes:           d.Notes,
		ReminderCount:   d.ReminderCount,
		LastReminderAt:  d.LastReminderAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLease converts a model Lease to a domain Lease
func ToDomainLease(m models.Lease) domain.Lease {
	return domain.Lease{
		LeaseID:         m.LeaseID,
		PropertyID:      m.PropertyID,
		TenantID:        m.TenantID,
		OwnerID:         m.OwnerID,
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Frequency:       domain.PaymentFrequency(m.Frequency),
		NextDueDate:     m.NextDueDate,
		LastPaidDate:    m.LastPaidDate,
		LastPaidAmount:  m.LastPaidAmount,
		SecurityDeposit: m.SecurityDeposit,
		LeaseStart:      m.LeaseStart,
		LeaseEnd:        m.LeaseEnd,
		Status:          domain.LeaseStatus(m.Status),
		Notes:           m.Notes,
		ReminderCount:   m.ReminderCount,
		LastReminderAt:  m.LastReminderAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaseSlice converts a slice of model Leases to a slice of domain Leases
func ToDomainLeaseSlice(ms []models.Lease) []domain.Lease {
	ds := make([]domain.Lease, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLease(m)
	}
	return ds
}
