package pgsql

import (
	"context"
	"errors"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDirectoryRepository implements the DirectoryGateway against the
// marketplace's own tables. Strictly read-only: the single property write
// this core performs lives inside the lease repository's atomic create.
type PgxDirectoryRepository struct {
	BaseRepository
}

func newPgxDirectoryRepository(pool *pgxpool.Pool) gateways.DirectoryGateway {
	return &PgxDirectoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ gateways.DirectoryGateway = (*PgxDirectoryRepository)(nil)

// GetProperty retrieves a property listing by ID.
func (r *PgxDirectoryRepository) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `
		SELECT property_id, owner_id, title, status
		FROM properties
		WHERE property_id = $1;
	`
	var p domain.Property
	var status string
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&p.PropertyID,
		&p.OwnerID,
		&p.Title,
		&status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(503, "failed to find property by ID "+propertyID, err)
	}
	p.Status = domain.PropertyStatus(status)
	return &p, nil
}

// GetUser retrieves a user together with notification preferences by ID.
func (r *PgxDirectoryRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, phone, notify_sms, notify_whatsapp, notify_email
		FROM users
		WHERE user_id = $1;
	`
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Preferences.SMS,
		&u.Preferences.WhatsApp,
		&u.Preferences.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(503, "failed to find user by ID "+userID, err)
	}
	return &u, nil
}
