package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Registry.PageSize)
	assert.Equal(t, 5, cfg.Registry.DrillDownPageSize)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ward.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":8181"
  shutdown_timeout: 3s
registry:
  page_size: 20
  military_highlight: TS
redis:
  url: redis://localhost:6379/0
export:
  bucket: from-file
`), 0o600))

	t.Setenv("WARD_EXPORT_BUCKET", "from-env")
	t.Setenv("WARD_EXPORT_PATH_STYLE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Registry.PageSize)
	assert.Equal(t, 5, cfg.Registry.DrillDownPageSize, "unset keys keep defaults")
	assert.Equal(t, "TS", cfg.Registry.MilitaryHighlight)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "from-env", cfg.Export.Bucket)
	assert.True(t, cfg.Export.PathStyle)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad number in env", func(t *testing.T) {
		t.Setenv("WARD_PAGE_SIZE", "ten")
		_, err := Load("")
		assert.ErrorContains(t, err, "WARD_PAGE_SIZE")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("WARD_TIMEZONE", "Mars/Olympus")
		_, err := Load("")
		assert.ErrorContains(t, err, "registry.timezone")
	})

	t.Run("zero page size", func(t *testing.T) {
		t.Setenv("WARD_PAGE_SIZE", "0")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("WARD_LOG_FORMAT", "xml")
		_, err := Load("")
		assert.Error(t, err)
	})
}
