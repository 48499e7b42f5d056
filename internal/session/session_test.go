package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikshau1/vaultnotes/internal/auth"
	"github.com/pratikshau1/vaultnotes/internal/common"
)

func newTestSession(t *testing.T, validity time.Duration) *Session {
	t.Helper()
	secret := []byte("test-secret")
	token, err := auth.GenerateToken("user-1", secret, validity)
	require.NoError(t, err)
	key := []byte{1, 2, 3, 4}
	return New("user-1", "alice", key, token, secret)
}

func TestSession_KeyWhileValid(t *testing.T) {
	s := newTestSession(t, time.Minute)

	require.NoError(t, s.Valid())
	key, err := s.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, key)
}

func TestSession_TeardownWipesKey(t *testing.T) {
	s := newTestSession(t, time.Minute)
	key, err := s.Key()
	require.NoError(t, err)

	s.Teardown()

	// The original buffer must be overwritten, not just dereferenced.
	assert.Equal(t, []byte{0, 0, 0, 0}, key)

	_, err = s.Key()
	assert.ErrorIs(t, err, common.ErrSessionExpired)
	assert.ErrorIs(t, s.Valid(), common.ErrSessionExpired)
}

func TestSession_TeardownIdempotent(t *testing.T) {
	s := newTestSession(t, time.Minute)
	s.Teardown()
	s.Teardown()
	assert.ErrorIs(t, s.Valid(), common.ErrSessionExpired)
}

func TestSession_ExpiredToken(t *testing.T) {
	s := newTestSession(t, -time.Minute)

	assert.ErrorIs(t, s.Valid(), common.ErrSessionExpired)
	_, err := s.Key()
	assert.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestSession_NilSafe(t *testing.T) {
	var s *Session
	assert.ErrorIs(t, s.Valid(), common.ErrSessionExpired)
	s.Teardown()
}
