package models

import "time"

// File is a vault file entry. Name, MIME type, and payload are cipher
// envelopes. Exactly one of EncryptedBlob and StorageKey is set: the payload
// either lives inline in the record store or in external blob storage under
// StorageKey.
//
// Size is the plaintext size in bytes and is stored in the clear, matching
// the rest of the system's threat model (sizes leak through storage anyway).
type File struct {
	ID            string
	UserID        string
	FolderID      string
	EncryptedName string
	EncryptedType string
	EncryptedBlob string
	StorageKey    string
	Size          int64
	Trashed       bool
	CreatedAt     time.Time
}
