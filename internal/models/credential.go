// Package models defines the persisted data types shared by repositories and
// services. Fields named Encrypted* hold serialized cipher envelopes; the
// repositories never see plaintext for them.
package models

import "time"

// CredentialRecord is the per-user authentication state.
//
// PasswordHash and the two salts are mutated only by the accounts service;
// EncryptedRecoveryData is written once at registration and never changes
// unless the passphrase is rotated. FailedAttempts and LockedUntil implement
// the lockout policy and must survive process restarts, so they live here
// rather than in memory.
type CredentialRecord struct {
	ID                    string
	Username              string
	PasswordHash          []byte
	PasswordSalt          string
	EncryptionSalt        string
	EncryptedRecoveryData string
	FailedAttempts        int
	LockedUntil           *time.Time
	CreatedAt             time.Time
}
