package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/repositories/credentials"
	"github.com/pratikshau1/vaultnotes/internal/repositories/files"
	"github.com/pratikshau1/vaultnotes/internal/repositories/folders"
	"github.com/pratikshau1/vaultnotes/internal/repositories/notes"
	"github.com/pratikshau1/vaultnotes/internal/storage/migrations"
)

// SQLiteManager builds repositories for the local embedded store.
type SQLiteManager struct{}

func (SQLiteManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

func (SQLiteManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewSQLiteRepository(db)
}

func (SQLiteManager) Folders(db dbx.DBTX) folders.Repository {
	return folders.NewSQLiteRepository(db)
}

func (SQLiteManager) Files(db dbx.DBTX) files.Repository {
	return files.NewSQLiteRepository(db)
}

func openSQLite(ctx context.Context, dsn string) (*sql.DB, Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	// modernc sqlite serializes writes itself, but keeping a single
	// connection avoids SQLITE_BUSY on concurrent statements.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "sqlite"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return db, SQLiteManager{}, nil
}
