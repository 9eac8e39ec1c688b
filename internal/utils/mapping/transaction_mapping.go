package mapping

import (
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/models"
)

// ToModelTransaction converts a domain LedgerTransaction to a model LedgerTransaction
func ToModelTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID: d.TransactionID,
		LeaseID:       d.LeaseID,
		PayerID:       d.PayerID,
		PayeeID:       d.PayeeID,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		Kind:          string(d.Kind),
		Status:        string(d.Status),
		EntryDate:     d.EntryDate,
		PaymentMethod: d.PaymentMethod,
		ExternalRef:   d.ExternalRef,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model LedgerTransaction to a domain LedgerTransaction
func ToDomainTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionID: m.TransactionID,
		LeaseID:       m.LeaseID,
		PayerID:       m.PayerID,
		PayeeID:       m.PayeeID,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Kind:          domain.TransactionKind(m.Kind),
		Status:        domain.TransactionStatus(m.Status),
		EntryDate:     m.EntryDate,
		PaymentMethod: m.PaymentMethod,
		ExternalRef:   m.ExternalRef,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model LedgerTransactions to domain objects
func ToDomainTransactionSlice(ms []models.LedgerTransaction) []domain.LedgerTransaction {
	ds := make([]domain.LedgerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
