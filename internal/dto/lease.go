package dto

import (
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaseRequest defines the payload for creating a lease. Dates use the
// YYYY-MM-DD wire format and are parsed by the service so a bad date maps to
// a validation error rather than a bind failure.
type CreateLeaseRequest struct {
	PropertyID      string           `json:"propertyID" binding:"required"`
	TenantID        string           `json:"tenantID" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode    string           `json:"currencyCode" binding:"omitempty,len=3"`
	Frequency       string           `json:"frequency" binding:"omitempty,oneof=weekly monthly yearly"`
	FirstDueDate    string           `json:"firstDueDate" binding:"required,dateonly"`
	Notes           string           `json:"notes" binding:"omitempty,max=2000"`
	SecurityDeposit *decimal.Decimal `json:"securityDeposit,omitempty"`
	LeaseStart      *string          `json:"leaseStart,omitempty" binding:"omitempty,dateonly"`
	LeaseEnd        *string          `json:"leaseEnd,omitempty" binding:"omitempty,dateonly"`
}

// LeaseResponse defines the data returned for a lease.
type LeaseResponse struct {
	LeaseID         string           `json:"leaseID"`
	PropertyID      string           `json:"propertyID"`
	TenantID        string           `json:"tenantID"`
	OwnerID         string           `json:"ownerID"`
	Amount          decimal.Decimal  `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	Frequency       string           `json:"frequency"`
	NextDueDate     time.Time        `json:"nextDueDate"`
	LastPaidDate    *time.Time       `json:"lastPaidDate,omitempty"`
	LastPaidAmount  *decimal.Decimal `json:"lastPaidAmount,omitempty"`
	SecurityDeposit *decimal.Decimal `json:"securityDeposit,omitempty"`
	LeaseStart      *time.Time       `json:"leaseStart,omitempty"`
	LeaseEnd        *time.Time       `json:"leaseEnd,omitempty"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	ReminderCount   int              `json:"reminderCount"`
	LastReminderAt  *time.Time       `json:"lastReminderAt,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ToLeaseResponse converts a domain Lease to a LeaseResponse DTO.
func ToLeaseResponse(l *domain.Lease) LeaseResponse {
	return LeaseResponse{
		LeaseID:         l.LeaseID,
		PropertyID:      l.PropertyID,
		TenantID:        l.TenantID,
		OwnerID:         l.OwnerID,
		Amount:          l.Amount,
		CurrencyCode:    l.CurrencyCode,
		Frequency:       string(l.Frequency),
		NextDueDate:     l.NextDueDate,
		LastPaidDate:    l.LastPaidDate,
		LastPaidAmount:  l.LastPaidAmount,
		SecurityDeposit: l.SecurityDeposit,
		LeaseStart:      l.LeaseStart,
		LeaseEnd:        l.LeaseEnd,
		Status:          string(l.Status),
		Notes:           l.Notes,
		ReminderCount:   l.ReminderCount,
		LastReminderAt:  l.LastReminderAt,
		CreatedAt:       l.CreatedAt,
	}
}

// ToLeaseResponses converts a slice of domain Leases to []LeaseResponse.
func ToLeaseResponses(leases []domain.Lease) []LeaseResponse {
	responses := make([]LeaseResponse, len(leases))
	for i := range leases {
		responses[i] = ToLeaseResponse(&leases[i])
	}
	return responses
}
