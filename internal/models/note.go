package models

import "time"

// Note is a vault note. Title, Content, and Labels are cipher envelopes;
// FolderID is empty for notes at the vault root. Trashed notes stay listable
// until permanently deleted.
//
// EncryptedLabels holds a whole label list in one envelope; an empty string
// means the note has no labels. Pinned and Archived stay in the clear so
// listings can sort and filter without the vault key.
type Note struct {
	ID               string
	UserID           string
	FolderID         string
	EncryptedTitle   string
	EncryptedContent string
	EncryptedLabels  string
	Pinned           bool
	Archived         bool
	Trashed          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
