// Package files persists encrypted file entries. The payload either lives
// inline in the row (EncryptedBlob) or in external blob storage (StorageKey);
// either way the repository only ever sees ciphertext.
package files

import (
	"context"

	"github.com/pratikshau1/vaultnotes/internal/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, userID, id string) (*models.File, error)
	// GetAll returns entries without their inline payloads so listings stay
	// cheap; use GetByID to fetch a payload.
	GetAll(ctx context.Context, userID string, includeTrashed bool) ([]models.File, error)
	SetTrashed(ctx context.Context, userID, id string, trashed bool) error
	DeleteByID(ctx context.Context, userID, id string) error
}
