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

// Folder is the decrypted view of a stored folder.
type Folder struct {
	ID            string
	Name          string
	DecryptFailed bool
	CreatedAt     time.Time
}

type FolderService struct {
	db      *sql.DB
	manager storage.Manager
	log     logging.Logger

	// test seam
	now func() time.Time
}

func NewFolderService(db *sql.DB, m storage.Manager, log logging.Logger) *FolderService {
	return &FolderService{db: db, manager: m, log: log, now: time.Now}
}

// Add creates a folder with an encrypted name.
func (s *FolderService) Add(ctx context.Context, sess *session.Session, name string) (*Folder, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	encName, err := cryptox.EncryptText(name, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting folder name: %w", err)
	}

	folder := &models.Folder{
		ID:            uuid.NewString(),
		UserID:        sess.UserID,
		EncryptedName: encName,
		CreatedAt:     s.now(),
	}
	if err := s.manager.Folders(s.db).Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("error creating folder: %w", err)
	}
	return &Folder{ID: folder.ID, Name: name, CreatedAt: folder.CreatedAt}, nil
}

// List returns the user's folders, degrading undecryptable names the same
// way note listings do.
func (s *FolderService) List(ctx context.Context, sess *session.Session) ([]Folder, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	recs, err := s.manager.Folders(s.db).GetAll(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]Folder, 0, len(recs))
	for i := range recs {
		f := Folder{ID: recs[i].ID, CreatedAt: recs[i].CreatedAt}
		name, err := cryptox.DecryptText(recs[i].EncryptedName, key)
		if err != nil {
			s.log.Warn(ctx, "folder failed to decrypt", "folder_id", recs[i].ID)
			f.DecryptFailed = true
		} else {
			f.Name = name
		}
		result = append(result, f)
	}
	return result, nil
}

// Delete removes a folder. Contained notes and files are not destroyed;
// listings treat a missing folder as the vault root.
func (s *FolderService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Folders(s.db).DeleteByID(ctx, sess.UserID, id)
}
