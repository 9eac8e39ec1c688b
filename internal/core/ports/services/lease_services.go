package services

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/dto"
)

// LeaseReaderSvc defines read operations for lease data
type LeaseReaderSvc interface {
	// GetLeaseByID retrieves a specific lease by its ID.
	GetLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)

	// ListLeases retrieves leases optionally scoped by host and/or tenant.
	ListLeases(ctx context.Context, hostID, tenantID string) ([]domain.Lease, error)

	// ListTransactions retrieves the ledger entries of a lease, oldest first.
	ListTransactions(ctx context.Context, leaseID string) ([]domain.LedgerTransaction, error)
}

// LeaseWriterSvc defines write operations for lease data
type LeaseWriterSvc interface {
	// CreateLease persists a new lease together with its first rent_due
	// ledger entry and the property status flip, all-or-nothing.
	CreateLease(ctx context.Context, req dto.CreateLeaseRequest, creatorUserID string) (*domain.Lease, error)
}

// LeaseSvcFacade combines all lease-related service interfaces
type LeaseSvcFacade interface {
	LeaseReaderSvc
	LeaseWriterSvc
}
