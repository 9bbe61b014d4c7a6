package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "school_db", cfg.Database.DBName)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "8080"
database:
  dbname: "records_test"
logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "records_test", cfg.Database.DBName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep their defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_PASSWORD", "env-secret")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Database.Password)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestInvalidConnMaxLifetimeRejected(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "school"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/school?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
