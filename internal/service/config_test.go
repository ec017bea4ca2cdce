package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ListenAddr())
	assert.Equal(t, 1, cfg.Oracle.Validators)
	assert.Equal(t, 30*time.Second, cfg.OracleTimeout())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "advisor.hcl")
	content := `
server {
  address   = "0.0.0.0"
  port      = 9090
  log_level = "debug"
}

oracle {
  model      = "gpt-4o"
  timeout_ms = 5000
  validators = 2
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr())
	assert.Equal(t, "gpt-4o", cfg.Oracle.Model)
	assert.Equal(t, 5*time.Second, cfg.OracleTimeout())
	assert.Equal(t, 2, cfg.Oracle.Validators)
	// Unset values still fall back to defaults.
	assert.Equal(t, "OPENAI_API_KEY", cfg.Oracle.APIKeyEnv)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigInvalidHCL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "advisor.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Oracle.Validators = 0
	require.Error(t, cfg.Validate())
}
