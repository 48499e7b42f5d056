package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/models"
)

// PostgresRepository implements Repository against the remote document store.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) error {
	query := `INSERT INTO notes (id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.FolderID, note.EncryptedTitle, note.EncryptedContent,
		note.EncryptedLabels, note.Pinned, note.Archived, note.Trashed, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	query := `UPDATE notes SET folder_id = $1, title = $2, content = $3, labels = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7`

	res, err := r.db.ExecContext(ctx, query,
		note.FolderID, note.EncryptedTitle, note.EncryptedContent, note.EncryptedLabels, note.UpdatedAt,
		note.ID, note.UserID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Note, error) {
	query := `SELECT id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at
		FROM notes WHERE id = $1 AND user_id = $2`

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&note.ID, &note.UserID, &note.FolderID, &note.EncryptedTitle, &note.EncryptedContent,
		&note.EncryptedLabels, &note.Pinned, &note.Archived, &note.Trashed, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context, userID string, includeTrashed bool) ([]models.Note, error) {
	query := `SELECT id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at
		FROM notes WHERE user_id = $1`
	if !includeTrashed {
		query += ` AND trashed = FALSE`
	}
	// Pinned notes list first.
	query += ` ORDER BY pinned DESC, updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.FolderID, &n.EncryptedTitle, &n.EncryptedContent,
			&n.EncryptedLabels, &n.Pinned, &n.Archived, &n.Trashed, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SetTrashed(ctx context.Context, userID, id string, trashed bool) error {
	query := `UPDATE notes SET trashed = $1 WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, trashed, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) SetPinned(ctx context.Context, userID, id string, pinned bool) error {
	query := `UPDATE notes SET pinned = $1 WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, pinned, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) SetArchived(ctx context.Context, userID, id string, archived bool) error {
	query := `UPDATE notes SET archived = $1 WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, archived, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, userID, id string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return checkAffected(res)
}
