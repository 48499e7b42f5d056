package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.Backend)
	assert.Equal(t, "vaultnotes.db", c.DatabaseDSN)
	assert.Equal(t, 5, c.MaxFailedAttempts)
	assert.Equal(t, 15*time.Minute, c.LockoutDuration)
	assert.Equal(t, 12*time.Hour, c.SessionValidityDuration)
	assert.Equal(t, "db", c.FileStorage)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, 5, cfg.MaxFailedAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)
}
