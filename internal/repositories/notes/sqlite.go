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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `INSERT INTO notes (id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.FolderID, note.EncryptedTitle, note.EncryptedContent,
		note.EncryptedLabels, note.Pinned, note.Archived, note.Trashed, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `UPDATE notes SET folder_id = ?, title = ?, content = ?, labels = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		note.FolderID, note.EncryptedTitle, note.EncryptedContent, note.EncryptedLabels, note.UpdatedAt,
		note.ID, note.UserID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, userID, id string) (*models.Note, error) {
	query := `SELECT id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at
		FROM notes WHERE id = ? AND user_id = ?`

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

func (r *SQLiteRepository) GetAll(ctx context.Context, userID string, includeTrashed bool) ([]models.Note, error) {
	query := `SELECT id, user_id, folder_id, title, content, labels, pinned, archived, trashed, created_at, updated_at
		FROM notes WHERE user_id = ?`
	if !includeTrashed {
		query += ` AND trashed = 0`
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

func (r *SQLiteRepository) SetTrashed(ctx context.Context, userID, id string, trashed bool) error {
	query := `UPDATE notes SET trashed = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, trashed, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) SetPinned(ctx context.Context, userID, id string, pinned bool) error {
	query := `UPDATE notes SET pinned = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, pinned, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) SetArchived(ctx context.Context, userID, id string, archived bool) error {
	query := `UPDATE notes SET archived = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, archived, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, userID, id string) error {
	query := `DELETE FROM notes WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
