package services

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/dto"
)

// PaymentSvcFacade defines payment recording operations.
type PaymentSvcFacade interface {
	// RecordPayment records a settled rent payment against a lease and
	// advances the lease's next due date by one period. Returns the updated
	// lease.
	RecordPayment(ctx context.Context, leaseID string, req dto.RecordPaymentRequest, recorderUserID string) (*domain.Lease, error)
}
