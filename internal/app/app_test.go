package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardregistry/internal/platform/config"
	"wardregistry/pkg/platform/middleware/requestid"
)

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestRouterServesRegistryAndHealth(t *testing.T) {
	a := newTestApp(t, config.Default())
	router := a.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dwellings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var page map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, float64(0), page["total_pages"])
}

func TestSeedIsAppliedAtStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dwellings:
  - {key: h1, house_number: "3", owner_name: Lê Văn C}
records:
  social_protection:
    - {dwelling: h1, subject_name: Lê Văn C, classification_name: Người cao tuổi, subsidy_amount: 360000}
`), 0o600))

	cfg := config.Default()
	cfg.Registry.SeedPath = path
	a := newTestApp(t, cfg)

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, float64(360000), summary["total_budget"])
}

func TestBadSeedFailsStartup(t *testing.T) {
	cfg := config.Default()
	cfg.Registry.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
