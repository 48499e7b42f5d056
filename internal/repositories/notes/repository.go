// Package notes persists encrypted note rows. The repository stores cipher
// envelopes verbatim; it has no access to plaintext or keys.
package notes

import (
	"context"

	"github.com/pratikshau1/vaultnotes/internal/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, userID, id string) (*models.Note, error)
	// GetAll lists the user's notes; trashed ones are included only when
	// includeTrashed is set.
	GetAll(ctx context.Context, userID string, includeTrashed bool) ([]models.Note, error)
	SetTrashed(ctx context.Context, userID, id string, trashed bool) error
	SetPinned(ctx context.Context, userID, id string, pinned bool) error
	SetArchived(ctx context.Context, userID, id string, archived bool) error
	DeleteByID(ctx context.Context, userID, id string) error
}
