package accounts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/config"
	"github.com/pratikshau1/vaultnotes/internal/cryptox"
	"github.com/pratikshau1/vaultnotes/internal/logging"
	"github.com/pratikshau1/vaultnotes/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	db, m, err := storage.Open(ctx, storage.BackendSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(db, m, cfg, log)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sess, recoveryKey, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.Len(t, recoveryKey, 64)
	assert.Equal(t, "alice", sess.Username)
	assert.NotEmpty(t, sess.UserID)

	key, err := sess.Key()
	require.NoError(t, err)
	assert.Len(t, key, cryptox.KeySize)

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "alice", "other", "other passphrase")
		assert.ErrorIs(t, err, common.ErrUsernameTaken)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "pw", "pp")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "pw12345!", "pp")
		assert.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("correct password unlocks a session", func(t *testing.T) {
		sess, err := svc.Login(ctx, "alice", "pw12345!", "correct horse battery staple")
		require.NoError(t, err)
		key, err := sess.Key()
		require.NoError(t, err)
		assert.Len(t, key, cryptox.KeySize)
	})

	t.Run("wrong password reports attempts remaining", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong", "pp")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)

		var ce *CredentialsError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 4, ce.AttemptsRemaining)
	})

	t.Run("successful login resets the counter", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "pw12345!", "correct horse battery staple")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice", "wrong", "pp")
		var ce *CredentialsError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 4, ce.AttemptsRemaining)

		_, err = svc.Login(ctx, "alice", "pw12345!", "correct horse battery staple")
		require.NoError(t, err)
	})
}

func TestLogin_LockoutScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	now := time.Now()
	svc.now = func() time.Time { return now }

	_, _, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)

	// Five wrong attempts count down 4,3,2,1,0.
	for i, want := range []int{4, 3, 2, 1, 0} {
		_, err := svc.Login(ctx, "alice", "wrong", "pp")
		var ce *CredentialsError
		require.ErrorAs(t, err, &ce, "attempt %d", i+1)
		assert.Equal(t, want, ce.AttemptsRemaining, "attempt %d", i+1)
	}

	// The sixth call rejects without verification, even with the correct
	// password, and reports when the lock expires.
	_, err = svc.Login(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.ErrorIs(t, err, common.ErrAccountLocked)

	var le *LockedError
	require.ErrorAs(t, err, &le)
	assert.WithinDuration(t, now.Add(15*time.Minute), le.Until, time.Second)

	// A locked rejection does not consume another attempt, so after the
	// lock expires a wrong password starts a fresh lockout window.
	svc.now = func() time.Time { return now.Add(16 * time.Minute) }

	sess, err := svc.Login(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)
	require.NoError(t, sess.Valid())
}

func TestRecover(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, recoveryKey, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)

	t.Run("correct key returns the passphrase", func(t *testing.T) {
		got, err := svc.Recover(ctx, "alice", recoveryKey)
		require.NoError(t, err)
		assert.Equal(t, "correct horse battery staple", got)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := cryptox.GenerateRecoveryKey()
		require.NoError(t, err)
		_, err = svc.Recover(ctx, "alice", other)
		assert.ErrorIs(t, err, common.ErrInvalidRecoveryKey)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := svc.Recover(ctx, "alice", "not-hex")
		assert.ErrorIs(t, err, common.ErrInvalidRecoveryKey)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Recover(ctx, "nobody", recoveryKey)
		assert.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("does not reset lockout state", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong", "pp")
		var ce *CredentialsError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, 4, ce.AttemptsRemaining)

		_, err = svc.Recover(ctx, "alice", recoveryKey)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice", "wrong", "pp")
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 3, ce.AttemptsRemaining)
	})
}

func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sess, recoveryKey, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)
	require.Len(t, recoveryKey, 64)

	key, err := sess.Key()
	require.NoError(t, err)

	envelope, err := cryptox.EncryptText("Groceries", key)
	require.NoError(t, err)

	got, err := cryptox.DecryptText(envelope, key)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got)

	passphrase, err := svc.Recover(ctx, "alice", recoveryKey)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", passphrase)
}

// The vault passphrase is never checked at login. A wrong passphrase yields
// a session whose key cannot decrypt anything stored earlier.
func TestLogin_WrongVaultPassphraseIsNotDetected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sess, _, err := svc.Register(ctx, "alice", "pw12345!", "correct horse battery staple")
	require.NoError(t, err)

	key, err := sess.Key()
	require.NoError(t, err)
	envelope, err := cryptox.EncryptText("Groceries", key)
	require.NoError(t, err)

	wrongSess, err := svc.Login(ctx, "alice", "pw12345!", "not the passphrase")
	require.NoError(t, err, "login must succeed regardless of the passphrase")

	wrongKey, err := wrongSess.Key()
	require.NoError(t, err)

	_, err = cryptox.DecryptText(envelope, wrongKey)
	assert.ErrorIs(t, err, common.ErrDecryptFailed)
}
