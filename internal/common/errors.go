// Package common defines shared constants and sentinel errors used across
// the VaultNotes layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account policy errors, surfaced to the UI layer as messages.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")

	// ErrDecryptFailed covers every decryption failure: malformed envelope,
	// wrong key, padding failure, or corrupted ciphertext. The causes are
	// indistinguishable without a MAC, so they collapse into one value.
	ErrDecryptFailed = errors.New("decryption failed")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")
)
