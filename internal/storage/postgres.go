package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/repositories/credentials"
	"github.com/pratikshau1/vaultnotes/internal/repositories/files"
	"github.com/pratikshau1/vaultnotes/internal/repositories/folders"
	"github.com/pratikshau1/vaultnotes/internal/repositories/notes"
	"github.com/pratikshau1/vaultnotes/internal/storage/migrations"
)

// PostgresManager builds repositories for the remote document store.
type PostgresManager struct{}

func (PostgresManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewPostgresRepository(db)
}

func (PostgresManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewPostgresRepository(db)
}

func (PostgresManager) Folders(db dbx.DBTX) folders.Repository {
	return folders.NewPostgresRepository(db)
}

func (PostgresManager) Files(db dbx.DBTX) files.Repository {
	return files.NewPostgresRepository(db)
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "postgres"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return db, PostgresManager{}, nil
}
