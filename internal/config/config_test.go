package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "test")

	cfg := Load()

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, "0.0.0.0:4002", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, 2*time.Second, cfg.DBConnectDelay)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "livraria")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_CONNECT_ATTEMPTS", "0")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 1, cfg.DBConnectAttempts)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "dbname=livraria")
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestDSN_SQLite(t *testing.T) {
	cfg := &Config{DBDriver: DriverSQLite, DBPath: "/tmp/catalogo.db"}

	assert.Equal(t, "file:/tmp/catalogo.db?_foreign_keys=1&_busy_timeout=5000", cfg.DSN())
}

func TestFindEnvFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("PORT=1234\n"), 0o600))

	t.Chdir(nested)

	path, ok := findEnvFile(".env")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".env"), path)
}
