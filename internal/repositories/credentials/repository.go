// Package credentials persists per-user CredentialRecord rows. Two
// implementations exist: SQLite for the local store and Postgres for the
// remote one. Both are driven through dbx.DBTX so the accounts service can
// run lockout updates inside a transaction.
package credentials

import (
	"context"
	"time"

	"github.com/pratikshau1/vaultnotes/internal/models"
)

type Repository interface {
	// Create inserts a new record. The username must be unique.
	Create(ctx context.Context, rec *models.CredentialRecord) error

	// GetByUsername returns the record for username or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.CredentialRecord, error)

	// IncrementFailedAttempts bumps the counter and returns the new value.
	IncrementFailedAttempts(ctx context.Context, id string) (int, error)

	// SetLock sets the lockout deadline.
	SetLock(ctx context.Context, id string, until time.Time) error

	// ResetLockout zeroes the counter and clears the deadline.
	ResetLockout(ctx context.Context, id string) error
}
