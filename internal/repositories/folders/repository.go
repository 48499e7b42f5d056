// Package folders persists encrypted folder rows.
package folders

import (
	"context"

	"github.com/pratikshau1/vaultnotes/internal/models"
)

type Repository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetAll(ctx context.Context, userID string) ([]models.Folder, error)
	DeleteByID(ctx context.Context, userID, id string) error
}
