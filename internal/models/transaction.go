package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is the database representation of a ledger entry.
// Rows are insert-only; there is no update path for this table.
type LedgerTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	LeaseID       string          `json:"leaseID"`       // FK -> leases.lease_id
	PayerID       string          `json:"payerID"`
	PayeeID       string          `json:"payeeID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Kind          string          `json:"kind"`   // rent_due | rent_payment
	Status        string          `json:"status"` // pending | completed
	EntryDate     time.Time       `json:"entryDate"`
	PaymentMethod string          `json:"paymentMethod"`
	ExternalRef   string          `json:"externalRef"`
	Notes         string          `json:"notes"`
	AuditFields
}
