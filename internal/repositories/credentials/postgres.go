package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/models"
)

// PostgresRepository implements Repository against the remote document store.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.CredentialRecord) error {
	query := `INSERT INTO credentials
		(id, username, password_hash, password_salt, encryption_salt, encrypted_recovery_data, failed_attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Username, rec.PasswordHash, rec.PasswordSalt,
		rec.EncryptionSalt, rec.EncryptedRecoveryData, rec.FailedAttempts, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert credential record: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.CredentialRecord, error) {
	query := `SELECT id, username, password_hash, password_salt, encryption_salt,
		encrypted_recovery_data, failed_attempts, locked_until, created_at
		FROM credentials WHERE username = $1`

	rec := &models.CredentialRecord{}
	var lockedUntil sql.NullTime

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&rec.ID, &rec.Username, &rec.PasswordHash, &rec.PasswordSalt,
		&rec.EncryptionSalt, &rec.EncryptedRecoveryData, &rec.FailedAttempts,
		&lockedUntil, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if lockedUntil.Valid {
		t := lockedUntil.Time
		rec.LockedUntil = &t
	}
	return rec, nil
}

func (r *PostgresRepository) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	query := `UPDATE credentials SET failed_attempts = failed_attempts + 1
		WHERE id = $1
		RETURNING failed_attempts`

	var attempts int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return attempts, nil
}

func (r *PostgresRepository) SetLock(ctx context.Context, id string, until time.Time) error {
	query := `UPDATE credentials SET locked_until = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, until, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ResetLockout(ctx context.Context, id string) error {
	query := `UPDATE credentials SET failed_attempts = 0, locked_until = NULL WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
