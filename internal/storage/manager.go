// Package storage wires database handles to repositories. A Manager hands
// out repositories bound to either the root *sql.DB or a transaction, so
// services can choose the scope per call.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pratikshau1/vaultnotes/internal/dbx"
	"github.com/pratikshau1/vaultnotes/internal/repositories/credentials"
	"github.com/pratikshau1/vaultnotes/internal/repositories/files"
	"github.com/pratikshau1/vaultnotes/internal/repositories/folders"
	"github.com/pratikshau1/vaultnotes/internal/repositories/notes"
)

// Backend names a record-store implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Manager hands out repositories bound to the given DBTX.
type Manager interface {
	Credentials(db dbx.DBTX) credentials.Repository
	Notes(db dbx.DBTX) notes.Repository
	Folders(db dbx.DBTX) folders.Repository
	Files(db dbx.DBTX) files.Repository
}

// Open opens the record store for the selected backend, runs migrations, and
// returns the database handle together with the matching Manager.
func Open(ctx context.Context, backend Backend, dsn string) (*sql.DB, Manager, error) {
	switch backend {
	case BackendSQLite:
		return openSQLite(ctx, dsn)
	case BackendPostgres:
		return openPostgres(ctx, dsn)
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
