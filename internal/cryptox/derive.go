// Package cryptox implements the client-side cryptographic core of
// VaultNotes: password-based key derivation, the AES-CBC envelope cipher used
// for every persisted note/file field, and the recovery-key escrow scheme.
//
// Nothing in this package performs I/O; callers own persistence of the
// envelope strings it produces.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/pratikshau1/vaultnotes/internal/common"
)

const (
	// KeySize is the size of derived AES-256 keys in bytes.
	KeySize = 32

	// SaltSize is the number of random bytes in a freshly generated salt.
	SaltSize = 16

	// AuthIterations is the PBKDF2 cost for the authentication key, used only
	// to verify a login secret. Kept deliberately cheaper than the vault
	// preset so logins stay fast.
	AuthIterations = 10000

	// VaultIterations is the PBKDF2 cost for the vault key that decrypts the
	// user's actual data. Ten times the authentication preset, to raise the
	// price of offline brute force against leaked salts and hashes.
	VaultIterations = 100000
)

// DeriveKey stretches a human-memorable secret into a 256-bit key using
// PBKDF2-SHA256 with the given iteration count.
//
// Derivation is deterministic: the same (secret, salt, iterations) triple
// always yields the same key, which is what allows the vault key to be
// re-derived on every login without ever persisting it. It cannot fail; an
// empty secret is accepted and simply produces a weak (but well-defined) key.
// Rejecting weak secrets is the accounts service's job, not this package's.
//
// The two cost presets, AuthIterations and VaultIterations, must never be
// confused: they use different salts and produce unrelated keys.
func DeriveKey(secret string, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(secret), []byte(salt), iterations, KeySize, sha256.New)
}

// GenerateSalt returns a fresh random salt as a 32-character hex string.
// Salts are not secret and are stored in plaintext alongside the
// credential record, one per purpose.
func GenerateSalt() (string, error) {
	s, err := common.MakeRandHexString(SaltSize)
	if err != nil {
		return "", err
	}
	return s, nil
}
