package apperrors_test

import (
	"errors"
	"testing"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      *apperrors.AppError
		sentinel error
	}{
		{
			name:     "400 maps to validation",
			err:      apperrors.NewAppError(400, "bad input", nil),
			sentinel: apperrors.ErrValidation,
		},
		{
			name:     "404 maps to not found",
			err:      apperrors.NewAppError(404, "lease missing", nil),
			sentinel: apperrors.ErrNotFound,
		},
		{
			name:     "409 maps to conflict",
			err:      apperrors.NewAppError(409, "lease not active", nil),
			sentinel: apperrors.ErrConflict,
		},
		{
			name:     "503 maps to store unavailable",
			err:      apperrors.NewAppError(503, "store down", nil),
			sentinel: apperrors.ErrStoreUnavailable,
		},
		{
			name:     "unknown code maps to internal",
			err:      apperrors.NewAppError(500, "boom", nil),
			sentinel: apperrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

// A wrapped driver error must not hide the sentinel: the repositories wrap
// every pgx failure as NewAppError(503, ..., err), and the handlers pick the
// status code back out with errors.Is.
func TestAppError_SentinelVisibleThroughCause(t *testing.T) {
	cause := errors.New("pg: connection refused")
	err := apperrors.NewAppError(503, "failed to insert lease", cause)

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Error(t *testing.T) {
	withCause := apperrors.NewAppError(503, "failed to insert lease", errors.New("pg: connection refused"))
	assert.Equal(t, "failed to insert lease: pg: connection refused", withCause.Error())

	bare := apperrors.NewAppError(409, "lease not active", nil)
	assert.Equal(t, "lease not active", bare.Error())
}

func TestNewNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("lease not found")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "lease not found", err.Message)
}
