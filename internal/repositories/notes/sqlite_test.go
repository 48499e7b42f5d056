package notes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/models"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE notes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		folder_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		labels TEXT NOT NULL DEFAULT '',
		pinned INTEGER NOT NULL DEFAULT 0,
		archived INTEGER NOT NULL DEFAULT 0,
		trashed INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func testNote(id, userID string) *models.Note {
	now := time.Now().UTC()
	return &models.Note{
		ID:               id,
		UserID:           userID,
		EncryptedTitle:   `{"iv":"00","ciphertext":"dGl0bGU="}`,
		EncryptedContent: `{"iv":"00","ciphertext":"Ym9keQ=="}`,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestSQLite_CreateGetUpdate(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testNote("n1", "u1")))

	got, err := repo.GetByID(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, `{"iv":"00","ciphertext":"dGl0bGU="}`, got.EncryptedTitle)

	got.EncryptedTitle = `{"iv":"01","ciphertext":"bmV3"}`
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, got))

	got2, err := repo.GetByID(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, `{"iv":"01","ciphertext":"bmV3"}`, got2.EncryptedTitle)
}

func TestSQLite_GetAllScopedToUser(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testNote("n1", "u1")))
	require.NoError(t, repo.Create(ctx, testNote("n2", "u1")))
	require.NoError(t, repo.Create(ctx, testNote("n3", "u2")))

	got, err := repo.GetAll(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLite_TrashedExcludedByDefault(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testNote("n1", "u1")))
	require.NoError(t, repo.Create(ctx, testNote("n2", "u1")))
	require.NoError(t, repo.SetTrashed(ctx, "u1", "n2", true))

	active, err := repo.GetAll(ctx, "u1", false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := repo.GetAll(ctx, "u1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLite_PinnedListFirst(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	older := testNote("n1", "u1")
	older.UpdatedAt = older.UpdatedAt.Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, testNote("n2", "u1")))

	// n1 is older, but pinning moves it to the top.
	require.NoError(t, repo.SetPinned(ctx, "u1", "n1", true))

	got, err := repo.GetAll(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n1", got[0].ID)
	assert.True(t, got[0].Pinned)

	require.NoError(t, repo.SetPinned(ctx, "u1", "n1", false))
	got, err = repo.GetAll(ctx, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, "n2", got[0].ID)
}

func TestSQLite_ArchivedFlagRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testNote("n1", "u1")))
	require.NoError(t, repo.SetArchived(ctx, "u1", "n1", true))

	got, err := repo.GetByID(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.True(t, got.Archived)

	assert.ErrorIs(t, repo.SetArchived(ctx, "u1", "missing", true), common.ErrorNotFound)
	assert.ErrorIs(t, repo.SetPinned(ctx, "u1", "missing", true), common.ErrorNotFound)
}

func TestSQLite_DeleteAndNotFound(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testNote("n1", "u1")))
	require.NoError(t, repo.DeleteByID(ctx, "u1", "n1"))

	_, err := repo.GetByID(ctx, "u1", "n1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, repo.DeleteByID(ctx, "u1", "n1"), common.ErrorNotFound)
	assert.ErrorIs(t, repo.SetTrashed(ctx, "u1", "n1", true), common.ErrorNotFound)

	// A note owned by another user is invisible, not deletable.
	require.NoError(t, repo.Create(ctx, testNote("n2", "u2")))
	assert.ErrorIs(t, repo.DeleteByID(ctx, "u1", "n2"), common.ErrorNotFound)
}
