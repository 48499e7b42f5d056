// Package config holds runtime settings for the VaultNotes application.
package config

import "time"

// Config holds every runtime setting of the application.
//
// Lockout settings are parameters on purpose: the 5-attempt/15-minute policy
// is a default, not a constant baked into the accounts service.
type Config struct {
	// Backend selects the record store: "sqlite" (local, default) or "postgres".
	Backend string
	// DatabaseDSN is the SQLite file path or the Postgres connection string.
	DatabaseDSN string

	// MaxFailedAttempts is the number of consecutive wrong-password logins
	// before the account locks.
	MaxFailedAttempts int
	// LockoutDuration is how long a locked account stays locked.
	LockoutDuration time.Duration

	// SessionSecret signs session tokens. When empty, a random per-process
	// secret is generated, which limits sessions to the current process.
	SessionSecret string
	// SessionValidityDuration bounds how long an unlocked session stays usable.
	SessionValidityDuration time.Duration

	// FileStorage selects where encrypted file payloads go: "db" (inline in
	// the record store, default) or "s3".
	FileStorage string

	// S3 settings, used only when FileStorage is "s3".
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = "sqlite"
	c.DatabaseDSN = "vaultnotes.db"
	c.MaxFailedAttempts = 5
	c.LockoutDuration = 15 * time.Minute
	c.SessionValidityDuration = 12 * time.Hour
	c.FileStorage = "db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
