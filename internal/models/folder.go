package models

import "time"

// Folder groups notes and files. The name is a cipher envelope like every
// other user-provided field.
type Folder struct {
	ID            string
	UserID        string
	EncryptedName string
	CreatedAt     time.Time
}
