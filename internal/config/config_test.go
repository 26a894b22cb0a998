package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "stages", cfg.StagesDir)
	assert.Equal(t, "dir", cfg.CatalogBackend)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\nstages_dir: /srv/stages\ncatalog_backend: sqlite\nsqlite_path: /srv/stages.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/srv/stages", cfg.StagesDir)
	assert.Equal(t, "sqlite", cfg.CatalogBackend)
	assert.Equal(t, "/srv/stages.db", cfg.SQLitePath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RUNMEME_ADDR", ":7000")
	t.Setenv("RUNMEME_STAGES_DIR", "/tmp/other-stages")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "/tmp/other-stages", cfg.StagesDir)
}

func TestUnknownBackendRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_backend: redis\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog_backend")
}
