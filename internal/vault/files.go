package vault

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratikshau1/vaultnotes/internal/blobstore"
	"github.com/pratikshau1/vaultnotes/internal/cryptox"
	"github.com/pratikshau1/vaultnotes/internal/logging"
	"github.com/pratikshau1/vaultnotes/internal/models"
	"github.com/pratikshau1/vaultnotes/internal/session"
	"github.com/pratikshau1/vaultnotes/internal/storage"
)

// File is the decrypted view of a stored file entry. Data is populated only
// by Get; listings carry metadata only.
type File struct {
	ID            string
	FolderID      string
	Name          string
	MimeType      string
	Data          []byte
	Size          int64
	Trashed       bool
	DecryptFailed bool
	CreatedAt     time.Time
}

// FileService owns the file lifecycle. When blobs is nil, encrypted payloads
// are stored inline in the record store; otherwise they go to the blob store
// and only a storage key is kept in the row.
type FileService struct {
	db      *sql.DB
	manager storage.Manager
	blobs   blobstore.Store
	log     logging.Logger

	// test seam
	now func() time.Time
}

func NewFileService(db *sql.DB, m storage.Manager, blobs blobstore.Store, log logging.Logger) *FileService {
	return &FileService{db: db, manager: m, blobs: blobs, log: log, now: time.Now}
}

// Add encrypts the file name, MIME type, and payload under the session key
// and stores a new entry. Size records the plaintext length.
func (s *FileService) Add(ctx context.Context, sess *session.Session, folderID, name, mimeType string, data []byte) (*File, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	encName, err := cryptox.EncryptText(name, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting file name: %w", err)
	}
	encType, err := cryptox.EncryptText(mimeType, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting mime type: %w", err)
	}
	encBlob, err := cryptox.EncryptBytes(data, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting payload: %w", err)
	}

	file := &models.File{
		ID:            uuid.NewString(),
		UserID:        sess.UserID,
		FolderID:      folderID,
		EncryptedName: encName,
		EncryptedType: encType,
		Size:          int64(len(data)),
		CreatedAt:     s.now(),
	}

	if s.blobs != nil {
		file.StorageKey = blobstore.GetRandomStorageKey()
		if err := s.blobs.Put(ctx, file.StorageKey, []byte(encBlob)); err != nil {
			return nil, fmt.Errorf("error uploading payload: %w", err)
		}
	} else {
		file.EncryptedBlob = encBlob
	}

	if err := s.manager.Files(s.db).Create(ctx, file); err != nil {
		return nil, fmt.Errorf("error creating file entry: %w", err)
	}

	return &File{
		ID:        file.ID,
		FolderID:  folderID,
		Name:      name,
		MimeType:  mimeType,
		Size:      file.Size,
		CreatedAt: file.CreatedAt,
	}, nil
}

// Get returns one file with its decrypted payload.
func (s *FileService) Get(ctx context.Context, sess *session.Session, id string) (*File, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	rec, err := s.manager.Files(s.db).GetByID(ctx, sess.UserID, id)
	if err != nil {
		return nil, err
	}

	file := s.decryptMeta(ctx, rec, key)
	if file.DecryptFailed {
		return &file, nil
	}

	encBlob := rec.EncryptedBlob
	if rec.StorageKey != "" {
		if s.blobs == nil {
			return nil, fmt.Errorf("file %s stored externally but no blob store configured", id)
		}
		raw, err := s.blobs.Get(ctx, rec.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error downloading payload: %w", err)
		}
		encBlob = string(raw)
	}

	data, err := cryptox.DecryptBytes(encBlob, key)
	if err != nil {
		s.log.Warn(ctx, "file payload failed to decrypt", "file_id", rec.ID)
		file.DecryptFailed = true
		return &file, nil
	}

	file.Data = data
	return &file, nil
}

// List returns the user's file entries without payloads.
func (s *FileService) List(ctx context.Context, sess *session.Session, includeTrashed bool) ([]File, error) {
	key, err := sess.Key()
	if err != nil {
		return nil, err
	}

	recs, err := s.manager.Files(s.db).GetAll(ctx, sess.UserID, includeTrashed)
	if err != nil {
		return nil, err
	}

	result := make([]File, 0, len(recs))
	for i := range recs {
		result = append(result, s.decryptMeta(ctx, &recs[i], key))
	}
	return result, nil
}

// Trash moves a file entry to the trash; Restore brings it back.
func (s *FileService) Trash(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Files(s.db).SetTrashed(ctx, sess.UserID, id, true)
}

func (s *FileService) Restore(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	return s.manager.Files(s.db).SetTrashed(ctx, sess.UserID, id, false)
}

// Delete removes the entry permanently, including any external payload.
func (s *FileService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := sess.Valid(); err != nil {
		return err
	}

	repo := s.manager.Files(s.db)
	rec, err := repo.GetByID(ctx, sess.UserID, id)
	if err != nil {
		return err
	}

	if rec.StorageKey != "" && s.blobs != nil {
		if err := s.blobs.Delete(ctx, rec.StorageKey); err != nil {
			// The row still goes away; an orphaned opaque blob is
			// preferable to a file entry that cannot be removed.
			s.log.Warn(ctx, "error deleting payload", "file_id", id, "error", err)
		}
	}

	return repo.DeleteByID(ctx, sess.UserID, id)
}

func (s *FileService) decryptMeta(ctx context.Context, rec *models.File, key []byte) File {
	file := File{
		ID:        rec.ID,
		FolderID:  rec.FolderID,
		Size:      rec.Size,
		Trashed:   rec.Trashed,
		CreatedAt: rec.CreatedAt,
	}

	name, errN := cryptox.DecryptText(rec.EncryptedName, key)
	mimeType, errT := cryptox.DecryptText(rec.EncryptedType, key)
	if errN != nil || errT != nil {
		s.log.Warn(ctx, "file entry failed to decrypt", "file_id", rec.ID)
		file.DecryptFailed = true
		return file
	}

	file.Name = name
	file.MimeType = mimeType
	return file
}
