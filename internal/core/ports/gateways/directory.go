package gateways

import (
	"context"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// DirectoryGateway provides read-only access to the marketplace's property
// and user directories. Lookups fail with apperrors.ErrNotFound when the
// record does not exist.
type DirectoryGateway interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
