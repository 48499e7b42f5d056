package files

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

func (r *SQLiteRepository) Create(ctx context.Context, file *models.File) error {
	query := `INSERT INTO files (id, user_id, folder_id, name, mime_type, blob, storage_key, size, trashed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.UserID, file.FolderID, file.EncryptedName, file.EncryptedType,
		file.EncryptedBlob, file.StorageKey, file.Size, file.Trashed, file.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, userID, id string) (*models.File, error) {
	query := `SELECT id, user_id, folder_id, name, mime_type, blob, storage_key, size, trashed, created_at
		FROM files WHERE id = ? AND user_id = ?`

	f := &models.File{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.FolderID, &f.EncryptedName, &f.EncryptedType,
		&f.EncryptedBlob, &f.StorageKey, &f.Size, &f.Trashed, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context, userID string, includeTrashed bool) ([]models.File, error) {
	query := `SELECT id, user_id, folder_id, name, mime_type, storage_key, size, trashed, created_at
		FROM files WHERE user_id = ?`
	if !includeTrashed {
		query += ` AND trashed = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []models.File
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.ID, &f.UserID, &f.FolderID, &f.EncryptedName, &f.EncryptedType,
			&f.StorageKey, &f.Size, &f.Trashed, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) SetTrashed(ctx context.Context, userID, id string, trashed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE files SET trashed = ? WHERE id = ? AND user_id = ?`, trashed, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
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
