// Package vault implements the content services sitting on top of the
// cipher layer: notes, folders, and files. Every user-provided field is
// encrypted under the session's vault key before it reaches a repository
// and decrypted on the way back out.
package vault

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratikshau1/vaultnotes/internal/cryptox"
	"github.com/pratikshau1/vaultnotes/internal/logging"
	"github.com/pratikshau1/vaultnotes/internal/models"
	"github.com/pratikshau1/vaultnotes/internal/session"
	"github.com/pratikshau1/vaultnotes/internal/storage"
)

// Note is the decrypted view of a stored note. When DecryptFailed is set the
// stored envelopes did not open under the session key and Title/Content/Labels
// are empty; the item still lists so siblings are unaffected.
type Note struct {
	ID            string
	FolderID      string
	Title         string
	Content       string
	Labels        []string
	Pinned        bool
	Archived      bool
	Trashed       bool
	DecryptFailed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NoteService owns the note lifecycle.
type NoteService struct {
	db      *sql.DB
	manager storage.Manager
	log     logging.Logger

	// test seam
	now func() time.Time
}

func NewNoteService(db *sql.DB, m storage.Manager, log logging.Logger) *NoteService {
	return &NoteService{db: db, manager: m, log: log, now: time.Now}
}

// Add encrypts title and content under the session key and stores a new note.
func (s *NoteService) Add(ctx context.Context, sess *session.Session, folderID, title, content string) (*Note, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	encTitle, err := cryptox.EncryptText(title, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting title: %w", err)
	}
	encContent, err := cryptox.EncryptText(content, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting content: %w", err)
	}

	now := s.now()
	note := &models.Note{
		ID:               uuid.NewString(),
		UserID:           sess.UserID,
		FolderID:         folderID,
		EncryptedTitle:   encTitle,
		EncryptedContent: encContent,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.manager.Notes(s.db).Create(ctx, note); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return &Note{ID: note.ID, FolderID: folderID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}, nil
}

// Get returns one decrypted note.
func (s *NoteService) Get(ctx context.Context, sess *session.Session, id string) (*Note, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	rec, err := s.manager.Notes(s.db).GetByID(ctx, sess.UserID, id)
	if err != nil {
		return nil, err
	}

	note := s.decryptNote(ctx, rec, key)
	return &note, nil
}

// List returns the user's notes. A note whose envelopes fail to decrypt is
// returned with DecryptFailed set instead of aborting the whole listing; the
// caller renders it as an error placeholder.
func (s *NoteService) List(ctx context.Context, sess *session.Session, includeTrashed bool) ([]Note, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	recs, err := s.manager.Notes(s.db).GetAll(ctx, sess.UserID, includeTrashed)
	if err != nil {
		return nil, err
	}

	result := make([]Note, 0, len(recs))
	for i := range recs {
		result = append(result, s.decryptNote(ctx, &recs[i], key))
	}
	return result, nil
}

// Update re-encrypts and replaces a note's title and content.
func (s *NoteService) Update(ctx context.Context, sess *session.Session, id, title, content string) error {
	key, err := sess.Key()
	if err != nil {
		return err
	}

	repo := s.manager.Notes(s.db)
	rec, err := repo.GetByID(ctx, sess.UserID, id)
	if err != nil {
		return err
	}

	rec.EncryptedTitle, err = cryptox.EncryptText(title, key)
	if err != nil {
		return fmt.Errorf("error encrypting title: %w", err)
	}
	rec.EncryptedContent, err = cryptox.EncryptText(content, key)
	if err != nil {
		return fmt.Errorf("error encrypting content: %w", err)
	}
	rec.UpdatedAt = s.now()

	return repo.Update(ctx, rec)
}

// SetLabels replaces a note's label list, stored as one encrypted envelope.
func (s *NoteService) SetLabels(ctx context.Context, sess *session.Session, id string, labels []string) error {
	key, err := sess.Key()
	if err != nil {
		return err
	}

	repo := s.manager.Notes(s.db)
	rec, err := repo.GetByID(ctx, sess.UserID, id)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		rec.EncryptedLabels = ""
	} else {
		rec.EncryptedLabels, err = cryptox.EncryptValue(labels, key)
		if err != nil {
			return fmt.Errorf("error encrypting labels: %w", err)
		}
	}
	rec.UpdatedAt = s.now()

	return repo.Update(ctx, rec)
}

// Pin moves a note to the top of listings; Unpin reverts it.
func (s *NoteService) Pin(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetPinned(ctx, sess.UserID, id, true)
}

func (s *NoteService) Unpin(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetPinned(ctx, sess.UserID, id, false)
}

// Archive hides a note from the default view without trashing it;
// Unarchive brings it back.
func (s *NoteService) Archive(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetArchived(ctx, sess.UserID, id, true)
}

func (s *NoteService) Unarchive(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetArchived(ctx, sess.UserID, id, false)
}

// Trash moves a note to the trash; Restore brings it back.
func (s *NoteService) Trash(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetTrashed(ctx, sess.UserID, id, true)
}

func (s *NoteService) Restore(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).SetTrashed(ctx, sess.UserID, id, false)
}

// Delete removes a note permanently.
func (s *NoteService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Notes(s.db).DeleteByID(ctx, sess.UserID, id)
}

func (s *NoteService) decryptNote(ctx context.Context, rec *models.Note, key []byte) Note {
	note := Note{
		ID:        rec.ID,
		FolderID:  rec.FolderID,
		Pinned:    rec.Pinned,
		Archived:  rec.Archived,
		Trashed:   rec.Trashed,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	title, errT := cryptox.DecryptText(rec.EncryptedTitle, key)
	content, errC := cryptox.DecryptText(rec.EncryptedContent, key)
	if errT != nil || errC != nil {
		s.log.Warn(ctx, "note failed to decrypt", "note_id", rec.ID)
		note.DecryptFailed = true
		return note
	}

	if rec.EncryptedLabels != "" {
		labels, err := cryptox.DecryptValue[[]string](rec.EncryptedLabels, key)
		if err != nil {
			s.log.Warn(ctx, "note failed to decrypt", "note_id", rec.ID)
			note.DecryptFailed = true
			return note
		}
		note.Labels = labels
	}

	note.Title = title
	note.Content = content
	return note
}
