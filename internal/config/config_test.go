package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.IsDev())
}

func TestLoadSQLite(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 8080
env: production
database:
  driver: sqlite
  path: /tmp/test-blog.db
`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test-blog.db", cfg.Database.Path)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  driver: postgres
`))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "nonsense_key: true\n"))
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  driver: mysql
  user: blog
  password: pw
  host: db.internal
  port: 3307
  name: blogdb
`))
	require.NoError(t, err)
	dsn := cfg.Database.DSNValue()
	assert.Contains(t, dsn, "blog:pw@tcp(db.internal:3307)/blogdb")
}
