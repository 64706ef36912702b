package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromBytes(t *testing.T) {
	t.Cleanup(func() { config = defaults })

	err := LoadConfigFromBytes([]byte("DB_DRIVER: sqlite\nSQLITE_PATH: /tmp/r.db\nRATE_LIMIT_MAX: 25\n"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"))
	assert.Equal(t, "/tmp/r.db", GetConfig("SQLITE_PATH"))
	assert.Equal(t, 25, GetConfigInt("RATE_LIMIT_MAX", 0))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfigFromBytesInvalid(t *testing.T) {
	t.Cleanup(func() { config = defaults })

	err := LoadConfigFromBytes([]byte("DB_DRIVER: [unterminated"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(func() { config = defaults })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"9000\"\nDB_HOST: db.internal\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	LoadConfig()

	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "override.internal", GetConfig("DB_HOST"))
	assert.Equal(t, 10, GetConfigInt("RATE_LIMIT_MAX", 0))
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(func() { config = defaults })
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	LoadConfig()

	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
}
