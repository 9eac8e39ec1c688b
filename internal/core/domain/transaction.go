package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes an obligation from a settlement.
type TransactionKind string

const (
	KindRentDue     TransactionKind = "rent_due"
	KindRentPayment TransactionKind = "rent_payment"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
)

// LedgerTransaction is an append-only fact of money owed or paid against a
// lease. Entries are immutable once written; corrections are new entries.
// Entries outlive lease cancellation as an audit trail.
type LedgerTransaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	LeaseID       string            `json:"leaseID"`
	PayerID       string            `json:"payerID"` // Tenant
	PayeeID       string            `json:"payeeID"` // Property owner
	Amount        decimal.Decimal   `json:"amount"`
	CurrencyCode  string            `json:"currencyCode"`
	Kind          TransactionKind   `json:"kind"`
	Status        TransactionStatus `json:"status"`
	// EntryDate is the due date for rent_due entries and the payment date
	// for rent_payment entries.
	EntryDate     time.Time `json:"entryDate"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	ExternalRef   string    `json:"externalRef,omitempty"`
	Notes         string    `json:"notes"`
	AuditFields
}
