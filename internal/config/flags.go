package config

import (
	"flag"
	"os"
	"time"

	"github.com/pratikshau1/vaultnotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   record store backend, "sqlite" or "postgres"
//	-d string   database DSN (SQLite file path or Postgres connection string)
//	-m int      failed login attempts allowed before lockout
//	-l int      lockout duration in minutes
//	-f string   file payload storage, "db" or "s3"
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-m", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "record store backend (sqlite|postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.IntVar(&cfg.MaxFailedAttempts, "m", cfg.MaxFailedAttempts, "failed login attempts before lockout")
	lockoutMinutes := fs.Int("l", int(cfg.LockoutDuration.Minutes()), "lockout duration (in minutes)")
	fs.StringVar(&cfg.FileStorage, "f", cfg.FileStorage, "file payload storage (db|s3)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LockoutDuration = time.Duration(*lockoutMinutes) * time.Minute
}
