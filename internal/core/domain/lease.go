package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFrequency is the billing cadence of a lease.
type PaymentFrequency string

const (
	FrequencyWeekly  PaymentFrequency = "weekly"
	FrequencyMonthly PaymentFrequency = "monthly"
	FrequencyYearly  PaymentFrequency = "yearly"
)

// IsValid reports whether f is one of the supported frequencies.
func (f PaymentFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// LeaseStatus is the lifecycle state of a lease.
// Cancelled is terminal: no payment or reminder may mutate a cancelled lease.
type LeaseStatus string

const (
	LeaseActive    LeaseStatus = "active"
	LeasePaused    LeaseStatus = "paused"
	LeaseCancelled LeaseStatus = "cancelled"
)

// Lease represents a recurring rent obligation between a tenant and a
// property owner. NextDueDate only ever moves forward (one period per
// recorded payment); ReminderCount and LastReminderAt are stamped by the
// reminder sweep and reset to zero when a payment opens a new due cycle.
type Lease struct {
	LeaseID         string           `json:"leaseID"` // Primary Key (UUID)
	PropertyID      string           `json:"propertyID"`
	TenantID        string           `json:"tenantID"`
	OwnerID         string           `json:"ownerID"`
	Amount          decimal.Decimal  `json:"amount"` // Positive; rent per period
	CurrencyCode    string           `json:"currencyCode"`
	Frequency       PaymentFrequency `json:"frequency"`
	NextDueDate     time.Time        `json:"nextDueDate"`
	LastPaidDate    *time.Time       `json:"lastPaidDate,omitempty"`
	LastPaidAmount  *decimal.Decimal `json:"lastPaidAmount,omitempty"`
	SecurityDeposit *decimal.Decimal `json:"securityDeposit,omitempty"`
	LeaseStart      *time.Time       `json:"leaseStart,omitempty"`
	LeaseEnd        *time.Time       `json:"leaseEnd,omitempty"`
	Status          LeaseStatus      `json:"status"`
	Notes           string           `json:"notes"`
	ReminderCount   int              `json:"reminderCount"`
	LastReminderAt  *time.Time       `json:"lastReminderAt,omitempty"`
	AuditFields
}
