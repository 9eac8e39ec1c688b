package dto

import (
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the payload for recording a rent payment.
// The amount is recorded as a settled fact: partial and over-payments are
// accepted without being checked against the amount owed.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate *string         `json:"paymentDate,omitempty" binding:"omitempty,dateonly"` // Defaults to today
	Method      string          `json:"method" binding:"omitempty,max=50"`
	ExternalRef string          `json:"externalRef" binding:"omitempty,max=200"`
	Notes       string          `json:"notes" binding:"omitempty,max=2000"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	LeaseID       string          `json:"leaseID"`
	PayerID       string          `json:"payerID"`
	PayeeID       string          `json:"payeeID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Kind          string          `json:"kind"`
	Status        string          `json:"status"`
	EntryDate     time.Time       `json:"entryDate"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	ExternalRef   string          `json:"externalRef,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ToTransactionResponse converts a domain LedgerTransaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.LedgerTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		LeaseID:       txn.LeaseID,
		PayerID:       txn.PayerID,
		PayeeID:       txn.PayeeID,
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		Kind:          string(txn.Kind),
		Status:        string(txn.Status),
		EntryDate:     txn.EntryDate,
		PaymentMethod: txn.PaymentMethod,
		ExternalRef:   txn.ExternalRef,
		Notes:         txn.Notes,
	}
}

// ToTransactionResponses converts a slice of domain LedgerTransactions to []TransactionResponse.
func ToTransactionResponses(txns []domain.LedgerTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
