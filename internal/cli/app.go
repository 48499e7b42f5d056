// Package cli implements the interactive VaultNotes terminal client: a small
// REPL over the accounts and vault services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/pratikshau1/vaultnotes/internal/accounts"
	"github.com/pratikshau1/vaultnotes/internal/blobstore"
	"github.com/pratikshau1/vaultnotes/internal/config"
	"github.com/pratikshau1/vaultnotes/internal/logging"
	"github.com/pratikshau1/vaultnotes/internal/session"
	"github.com/pratikshau1/vaultnotes/internal/storage"
	"github.com/pratikshau1/vaultnotes/internal/vault"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	accounts *accounts.Service
	notes    *vault.NoteService
	folders  *vault.FolderService
	files    *vault.FileService
	session  *session.Session
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, manager, err := storage.Open(ctx, storage.Backend(cfg.Backend), cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error opening record store", "error", err)
		return nil, err
	}

	var blobs blobstore.Store
	if cfg.FileStorage == "s3" {
		blobs = blobstore.NewS3Store(blobstore.S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	}

	return &App{
		config:   cfg,
		db:       db,
		accounts: accounts.NewService(db, manager, cfg, log),
		notes:    vault.NewNoteService(db, manager, log),
		folders:  vault.NewFolderService(db, manager, log),
		files:    vault.NewFileService(db, manager, blobs, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run drives the REPL until the user exits, then tears the session down and
// closes the record store.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	a.session.Teardown()
	a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Valid() == nil
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return a.session.Username
	}
	return "locked"
}
