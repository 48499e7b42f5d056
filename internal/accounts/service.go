// Package accounts implements the account credential policy: registration,
// login with failed-attempt lockout, and passphrase recovery. It owns the
// CredentialRecord lifecycle and is the only writer of lockout state.
package accounts

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratikshau1/vaultnotes/internal/auth"
	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/config"
	"github.com/pratikshau1/vaultnotes/internal/cryptox"
	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/logging"
	"github.com/pratikshau1/vaultnotes/internal/models"
	"github.com/pratikshau1/vaultnotes/internal/session"
	"github.com/pratikshau1/vaultnotes/internal/storage"
)

// Service provides the account operations:
// - Register: create a credential record and a one-time recovery key
// - Login: verify the login secret, enforce lockout, unlock a session
// - Recover: unwrap the escrowed vault passphrase with a recovery key
type Service struct {
	db      *sql.DB
	manager storage.Manager
	log     logging.Logger

	maxFailedAttempts int
	lockoutDuration   time.Duration

	sessionSecret   []byte
	sessionValidity time.Duration

	// test seam
	now func() time.Time
}

// NewService constructs a Service from the record store and config. An empty
// session secret gets replaced with a random per-process one, which scopes
// sessions to the current process.
func NewService(db *sql.DB, m storage.Manager, cfg *config.Config, log logging.Logger) *Service {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = common.GenerateRandByteArray(32)
	}
	return &Service{
		db:                db,
		manager:           m,
		log:               log,
		maxFailedAttempts: cfg.MaxFailedAttempts,
		lockoutDuration:   cfg.LockoutDuration,
		sessionSecret:     secret,
		sessionValidity:   cfg.SessionValidityDuration,
		now:               time.Now,
	}
}

// Register creates a new account and unlocks a session for it.
//
// The returned recovery key is shown to the user exactly once; no plaintext
// or recoverable copy of it is retained anywhere. Only the passphrase
// wrapped under it is stored.
func (s *Service) Register(ctx context.Context, username, loginSecret, vaultPassphrase string) (*session.Session, string, error) {
	if username == "" || loginSecret == "" || vaultPassphrase == "" {
		return nil, "", fmt.Errorf("%w: username, password and vault passphrase are required", common.ErrInvalidCredentials)
	}

	repo := s.manager.Credentials(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, "", common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", fmt.Errorf("error checking username: %w", err)
	}

	// Independent salts: the login secret and the vault passphrase must
	// never share derivation inputs.
	passwordSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	encryptionSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	recoveryKey, err := cryptox.GenerateRecoveryKey()
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	encryptedRecoveryData, err := cryptox.WrapPassphrase(vaultPassphrase, recoveryKey)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	rec := &models.CredentialRecord{
		ID:                    uuid.NewString(),
		Username:              username,
		PasswordHash:          cryptox.DeriveKey(loginSecret, passwordSalt, cryptox.AuthIterations),
		PasswordSalt:          passwordSalt,
		EncryptionSalt:        encryptionSalt,
		EncryptedRecoveryData: encryptedRecoveryData,
		FailedAttempts:        0,
		CreatedAt:             s.now(),
	}
	if err := repo.Create(ctx, rec); err != nil {
		return nil, "", fmt.Errorf("error creating credential record: %w", err)
	}

	sess, err := s.unlockSession(rec, vaultPassphrase)
	if err != nil {
		return nil, "", err
	}

	s.log.Info(ctx, "account registered", "username", username)
	return sess, recoveryKey, nil
}

// Login verifies the login secret against the stored hash and, on success,
// derives the vault key and unlocks a session.
//
// The vault passphrase is never verified here. A wrong passphrase yields a
// wrong vault key, which surfaces later as per-item decryption failures.
// Verifying it would require storing a verifiable trace of the passphrase,
// which this design refuses to do. Preserve this behavior.
func (s *Service) Login(ctx context.Context, username, loginSecret, vaultPassphrase string) (*session.Session, error) {
	repo := s.manager.Credentials(s.db)

	rec, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrorInternal
	}

	// A standing lock rejects before any verification and does not count
	// as a new failed attempt.
	if rec.LockedUntil != nil && rec.LockedUntil.After(s.now()) {
		return nil, &LockedError{Until: *rec.LockedUntil}
	}

	candidate := cryptox.DeriveKey(loginSecret, rec.PasswordSalt, cryptox.AuthIterations)
	if subtle.ConstantTimeCompare(rec.PasswordHash, candidate) != 1 {
		return nil, s.registerFailedAttempt(ctx, rec)
	}

	if err := repo.ResetLockout(ctx, rec.ID); err != nil {
		return nil, common.ErrorInternal
	}

	sess, err := s.unlockSession(rec, vaultPassphrase)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "login ok", "username", username)
	return sess, nil
}

// Recover unwraps the escrowed vault passphrase with the recovery key and
// returns it for display. It does not reset lockout state and does not log
// the user in; the caller guides the user back to Login.
func (s *Service) Recover(ctx context.Context, username, recoveryKey string) (string, error) {
	repo := s.manager.Credentials(s.db)

	rec, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", common.ErrorInternal
	}

	passphrase, err := cryptox.UnwrapPassphrase(rec.EncryptedRecoveryData, recoveryKey)
	if err != nil {
		return "", common.ErrInvalidRecoveryKey
	}
	return passphrase, nil
}

// registerFailedAttempt counts a wrong-password attempt and locks the
// account at the threshold. The increment and the lock run in one
// transaction so concurrent attempts cannot under-count.
func (s *Service) registerFailedAttempt(ctx context.Context, rec *models.CredentialRecord) error {
	var attempts int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.manager.Credentials(tx)
		var incErr error
		attempts, incErr = repoTx.IncrementFailedAttempts(ctx, rec.ID)
		if incErr != nil {
			return incErr
		}
		if attempts >= s.maxFailedAttempts {
			return repoTx.SetLock(ctx, rec.ID, s.now().Add(s.lockoutDuration))
		}
		return nil
	})
	if err != nil {
		return common.ErrorInternal
	}

	remaining := s.maxFailedAttempts - attempts
	if remaining < 0 {
		remaining = 0
	}
	s.log.Warn(ctx, "failed login attempt", "username", rec.Username, "attempts", attempts)
	return &CredentialsError{AttemptsRemaining: remaining}
}

// unlockSession derives the vault key and mints the session token.
func (s *Service) unlockSession(rec *models.CredentialRecord, vaultPassphrase string) (*session.Session, error) {
	key := cryptox.DeriveKey(vaultPassphrase, rec.EncryptionSalt, cryptox.VaultIterations)

	token, err := auth.GenerateToken(rec.ID, s.sessionSecret, s.sessionValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return session.New(rec.ID, rec.Username, key, token, s.sessionSecret), nil
}
