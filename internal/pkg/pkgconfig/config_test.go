package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  server:
    address:
      http: ":8080"
modules:
  flight-plan:
    enabled: true
    cache:
      ttl_seconds: 30
    provider:
      timeout: 2s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := NewViper(path)
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, ":8080", cfg.GetString("app.server.address.http"))
	assert.True(t, cfg.GetBool("modules.flight-plan.enabled"))
	assert.Equal(t, 30, cfg.GetInt("modules.flight-plan.cache.ttl_seconds"))
	assert.Equal(t, 2*time.Second, cfg.GetDuration("modules.flight-plan.provider.timeout"))
}

func TestNewViperMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewViperDefaultsEnvOverride(t *testing.T) {
	t.Setenv("MODULES_FLIGHT_PLAN_CHECKWX_API_KEY", "from-env")

	cfg := NewViperDefaults(map[string]any{
		"modules.flight-plan.checkwx.api_key":  "",
		"modules.flight-plan.checkwx.base_url": "https://api.checkwx.com",
	})

	assert.Equal(t, "from-env", cfg.GetString("modules.flight-plan.checkwx.api_key"))
	assert.Equal(t, "https://api.checkwx.com", cfg.GetString("modules.flight-plan.checkwx.base_url"))
}

func TestViperSetOverridesEnv(t *testing.T) {
	t.Setenv("MODULES_FLIGHT_PLAN_AIRPORTS_FILE", "/from/env.json")

	cfg := NewViperDefaults(map[string]any{"modules.flight-plan.airports.file": "/default.json"})
	assert.Equal(t, "/from/env.json", cfg.GetString("modules.flight-plan.airports.file"))

	cfg.Set("modules.flight-plan.airports.file", "/override.json")
	assert.Equal(t, "/override.json", cfg.GetString("modules.flight-plan.airports.file"))
}
