package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"backend":          "postgres",
		"database_dsn":     "postgres://localhost/vault",
		"lockout_duration": "30m",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "postgres", cfg.Backend)
		assert.Equal(t, "postgres://localhost/vault", cfg.DatabaseDSN)
		assert.Equal(t, 30*time.Minute, cfg.LockoutDuration)
	})

	t.Run("absent fields keep existing values", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{MaxFailedAttempts: 5, SessionValidityDuration: 12 * time.Hour}
		parseJson(cfg)

		assert.Equal(t, 5, cfg.MaxFailedAttempts)
		assert.Equal(t, 12*time.Hour, cfg.SessionValidityDuration)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			Backend:         "sqlite",
			LockoutDuration: 15 * time.Minute,
		}
		parseJson(cfg)

		assert.Equal(t, "sqlite", cfg.Backend)
		assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
