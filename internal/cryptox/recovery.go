package cryptox

import (
	"encoding/hex"
	"fmt"

	"github.com/pratikshau1/vaultnotes/internal/common"
)

// RecoveryKeySize is the size of a recovery key in bytes (256 bits).
const RecoveryKeySize = 32

// GenerateRecoveryKey returns a fresh 256-bit random recovery key as a
// 64-character lowercase hex string.
//
// The key is displayed to the user exactly once, at registration, and the
// system retains no copy in plaintext or recoverable form anywhere. Only the
// wrapped passphrase is kept, so losing the recovery key is unrecoverable by
// design: the service operator has nothing to restore it from.
func GenerateRecoveryKey() (string, error) {
	return common.MakeRandHexString(RecoveryKeySize)
}

// WrapPassphrase encrypts the user's vault passphrase under the recovery key
// and returns the serialized envelope (the recovery bundle).
//
// The recovery key's raw bytes are used directly as the AES key: it is
// already full-entropy random material, so stretching it would add nothing.
func WrapPassphrase(passphrase string, recoveryKey string) (string, error) {
	key, err := decodeRecoveryKey(recoveryKey)
	if err != nil {
		return "", err
	}
	return EncryptText(passphrase, key)
}

// UnwrapPassphrase decrypts a recovery bundle with the supplied recovery key
// and returns the vault passphrase.
//
// A wrong key, a malformed bundle, or a recovery key that is not 64 hex
// characters all map to common.ErrDecryptFailed; the caller never sees a
// thrown failure from this path.
func UnwrapPassphrase(bundle string, recoveryKey string) (string, error) {
	key, err := hex.DecodeString(recoveryKey)
	if err != nil || len(key) != RecoveryKeySize {
		return "", fmt.Errorf("%w: bad recovery key", common.ErrDecryptFailed)
	}
	return DecryptText(bundle, key)
}

func decodeRecoveryKey(recoveryKey string) ([]byte, error) {
	key, err := hex.DecodeString(recoveryKey)
	if err != nil {
		return nil, fmt.Errorf("decode recovery key: %w", err)
	}
	if len(key) != RecoveryKeySize {
		return nil, fmt.Errorf("recovery key must be %d bytes, got %d", RecoveryKeySize, len(key))
	}
	return key, nil
}
