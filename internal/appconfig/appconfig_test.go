package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	raw := `
host: localhost:8080
basePath: /api/v1
store:
  backend: mongo
  mongo:
    uri: "{{ .MONGO_URI }}"
    database: dashboards
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Host)
	assert.Equal(t, "/api/v1", cfg.BasePath)
	assert.Equal(t, BackendMongo, cfg.Store.Backend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.Mongo.URI,
		"environment variables are substituted through the template")
	assert.Equal(t, "dashboards", cfg.Store.Mongo.Database)
}

func TestLoadConfigDefaults(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: localhost:8080\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "users.json", cfg.Store.File.UsersPath)
	assert.Equal(t, "db.json", cfg.Store.File.DataPath)
}
