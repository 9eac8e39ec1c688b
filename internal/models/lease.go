package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease is the database representation of a rent agreement.
// Note: Amount uses github.com/shopspring/decimal, never float.
type Lease struct {
	LeaseID         string           `json:"leaseID"` // Primary Key (UUID)
	PropertyID      string           `json:"propertyID"`
	TenantID        string           `json:"tenantID"`
	OwnerID         string           `json:"ownerID"`
	Amount          decimal.Decimal  `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	Frequency       string           `json:"frequency"` // weekly | monthly | yearly
	NextDueDate     time.Time        `json:"nextDueDate"`
	LastPaidDate    *time.Time       `json:"lastPaidDate"`
	LastPaidAmount  *decimal.Decimal `json:"lastPaidAmount"`
	SecurityDeposit *decimal.Decimal `json:"securityDeposit"`
	LeaseStart      *time.Time       `json:"leaseStart"`
	LeaseEnd        *time.Time       `json:"leaseEnd"`
	Status          string           `json:"status"` // active | paused | cancelled
	Notes           string           `json:"notes"`
	ReminderCount   int              `json:"reminderCount"`
	LastReminderAt  *time.Time       `json:"lastReminderAt"`
	AuditFields
}
