// Package session holds the state of an unlocked vault: the user identity,
// the signed session token, and the derived vault key.
//
// The session object is passed explicitly to every service that needs the
// key; there is no ambient or global current-user state. Logout is
// Teardown(), which overwrites the key material in place.
package session

import (
	"github.com/pratikshau1/vaultnotes/internal/auth"
	"github.com/pratikshau1/vaultnotes/internal/common"
)

// Session is the in-memory state of a logged-in user. The vault key lives
// only here, is never mutated in place, and is discarded wholesale on logout.
type Session struct {
	UserID   string
	Username string

	token  string
	secret []byte
	key    []byte
}

// New builds a session from a freshly derived vault key and a minted token.
// The session takes ownership of key; the caller must not wipe or reuse it.
func New(userID, username string, key []byte, token string, secret []byte) *Session {
	return &Session{
		UserID:   userID,
		Username: username,
		token:    token,
		secret:   secret,
		key:      key,
	}
}

// Key returns the vault key, or common.ErrSessionExpired once the session has
// been torn down or its token has expired.
func (s *Session) Key() ([]byte, error) {
	if err := s.Valid(); err != nil {
		return nil, err
	}
	return s.key, nil
}

// Valid reports whether the session is still usable: not torn down and the
// token still verifies. All failures map to common.ErrSessionExpired so the
// caller's response is uniform — prompt for login again.
func (s *Session) Valid() error {
	if s == nil || s.key == nil {
		return common.ErrSessionExpired
	}
	if _, err := auth.GetUserIDFromToken(s.token, s.secret); err != nil {
		return common.ErrSessionExpired
	}
	return nil
}

// Token exposes the raw session token.
func (s *Session) Token() string {
	return s.token
}

// Teardown wipes the vault key and invalidates the session. Safe to call
// more than once.
func (s *Session) Teardown() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.key)
	s.key = nil
	s.token = ""
}
